package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wastezero/wastezero-api/schema"
)

// AuditOperator is the append-only audit sink.
type AuditOperator interface {
	InsertAuditEntry(entry *schema.AuditEntry) error
	FindAuditEntries(limit int64) ([]schema.AuditEntry, error)
}

func (m mongoDB) auditCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.AuditLogCollection)
}

func (m mongoDB) InsertAuditEntry(entry *schema.AuditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := m.auditCollection().InsertOne(ctx, entry)
	return err
}

func (m mongoDB) FindAuditEntries(limit int64) ([]schema.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit)

	cursor, err := m.auditCollection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]schema.AuditEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
