package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

const (
	collectionCenters     = "centers"
	collectionCollections = "collections"
)

// CenterRepository persists collection centers.
type CenterRepository struct {
	col *mongo.Collection
}

func NewCenterRepository(db *mongo.Database) *CenterRepository {
	return &CenterRepository{col: db.Collection(collectionCenters)}
}

type mongoCenter struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Location string             `bson:"location"`
}

func (m *mongoCenter) toDomain() *domain.Center {
	return &domain.Center{ID: m.ID.Hex(), Name: m.Name, Location: m.Location}
}

func (r *CenterRepository) List(ctx context.Context) ([]*domain.Center, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	defer cur.Close(ctx)

	var centers []*domain.Center
	for cur.Next(ctx) {
		var m mongoCenter
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode center: %w", err)
		}
		centers = append(centers, m.toDomain())
	}
	return centers, cur.Err()
}

func (r *CenterRepository) Create(ctx context.Context, c *domain.Center) (*domain.Center, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoCenter{Name: c.Name, Location: c.Location})
	if err != nil {
		return nil, fmt.Errorf("insert center: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CenterRepository) Update(ctx context.Context, c *domain.Center) (*domain.Center, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"name": c.Name, "location": c.Location}})
	if err != nil {
		return nil, fmt.Errorf("update center: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return c, nil
}

func (r *CenterRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete center: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// CollectionRepository persists daily collection entries.
type CollectionRepository struct {
	col *mongo.Collection
}

func NewCollectionRepository(db *mongo.Database) *CollectionRepository {
	return &CollectionRepository{col: db.Collection(collectionCollections)}
}

type mongoCollection struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Amount   float64            `bson:"amount"`
	Date     string             `bson:"date"`
	CenterID string             `bson:"center_id"`
}

func (m *mongoCollection) toDomain() *domain.Collection {
	return &domain.Collection{ID: m.ID.Hex(), Amount: m.Amount, Date: m.Date, CenterID: m.CenterID}
}

func (r *CollectionRepository) List(ctx context.Context) ([]*domain.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.Collection
	for cur.Next(ctx) {
		var m mongoCollection
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
		entries = append(entries, m.toDomain())
	}
	return entries, cur.Err()
}

func (r *CollectionRepository) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoCollection{Amount: c.Amount, Date: c.Date, CenterID: c.CenterID})
	if err != nil {
		return nil, fmt.Errorf("insert collection: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CollectionRepository) Update(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	set := bson.M{"amount": c.Amount, "date": c.Date, "center_id": c.CenterID}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update collection: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return c, nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
