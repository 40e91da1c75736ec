package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

const collectionLoginEvents = "login_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{col: db.Collection(collectionLoginEvents)}
}

// Insert persists a login event to the audit trail.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.LoginEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"username":  event.Username,
		"kind":      event.Kind,
		"remote_ip": event.RemoteIP,
		"at":        event.At.UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert login event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events for a username, most recent first.
func (r *AuditRepository) ListRecent(ctx context.Context, username string, limit int) ([]*domain.LoginEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("list login events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.LoginEvent
	for cur.Next(ctx) {
		var e domain.LoginEvent
		if err := cur.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode login event: %w", err)
		}
		events = append(events, &e)
	}
	return events, cur.Err()
}
