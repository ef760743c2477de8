package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

const auditCollection = "audit_events"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	UserID    int64  `bson:"user_id,omitempty"`
	Email     string `bson:"email"`
	Action    string `bson:"action"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := mongoAuditEvent{
		UserID:    event.UserID,
		Email:     event.Email,
		Action:    event.Action,
		Timestamp: event.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
