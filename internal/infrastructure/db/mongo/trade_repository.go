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
	collectionSales     = "sales"
	collectionCustomers = "customers"
)

// SaleRepository persists sales.
type SaleRepository struct {
	col *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales)}
}

type mongoSale struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Item       string             `bson:"item"`
	Quantity   int                `bson:"quantity"`
	Price      float64            `bson:"price"`
	Date       string             `bson:"date"`
	CenterID   string             `bson:"center_id,omitempty"`
	CustomerID string             `bson:"customer_id,omitempty"`
}

func (m *mongoSale) toDomain() *domain.Sale {
	return &domain.Sale{
		ID:         m.ID.Hex(),
		Item:       m.Item,
		Quantity:   m.Quantity,
		Price:      m.Price,
		Date:       m.Date,
		CenterID:   m.CenterID,
		CustomerID: m.CustomerID,
	}
}

func (r *SaleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	var sales []*domain.Sale
	for cur.Next(ctx) {
		var m mongoSale
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		sales = append(sales, m.toDomain())
	}
	return sales, cur.Err()
}

func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSale{
		Item:       s.Item,
		Quantity:   s.Quantity,
		Price:      s.Price,
		Date:       s.Date,
		CenterID:   s.CenterID,
		CustomerID: s.CustomerID,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	created := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SaleRepository) Update(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	set := bson.M{
		"item":        s.Item,
		"quantity":    s.Quantity,
		"price":       s.Price,
		"date":        s.Date,
		"center_id":   s.CenterID,
		"customer_id": s.CustomerID,
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update sale: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return s, nil
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// CustomerRepository persists customers.
type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(collectionCustomers)}
}

type mongoCustomer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	GSTNumber     string             `bson:"gst_number,omitempty"`
	AccountNumber string             `bson:"account_number,omitempty"`
	IFSCCode      string             `bson:"ifsc_code,omitempty"`
	Bank          string             `bson:"bank,omitempty"`
	Address       string             `bson:"address,omitempty"`
	MobileNumber  string             `bson:"mobile_number,omitempty"`
}

func (m *mongoCustomer) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:            m.ID.Hex(),
		Name:          m.Name,
		GSTNumber:     m.GSTNumber,
		AccountNumber: m.AccountNumber,
		IFSCCode:      m.IFSCCode,
		Bank:          m.Bank,
		Address:       m.Address,
		MobileNumber:  m.MobileNumber,
	}
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cur.Close(ctx)

	var customers []*domain.Customer
	for cur.Next(ctx) {
		var m mongoCustomer
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		customers = append(customers, m.toDomain())
	}
	return customers, cur.Err()
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCustomer{
		Name:          c.Name,
		GSTNumber:     c.GSTNumber,
		AccountNumber: c.AccountNumber,
		IFSCCode:      c.IFSCCode,
		Bank:          c.Bank,
		Address:       c.Address,
		MobileNumber:  c.MobileNumber,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	set := bson.M{
		"name":           c.Name,
		"gst_number":     c.GSTNumber,
		"account_number": c.AccountNumber,
		"ifsc_code":      c.IFSCCode,
		"bank":           c.Bank,
		"address":        c.Address,
		"mobile_number":  c.MobileNumber,
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
