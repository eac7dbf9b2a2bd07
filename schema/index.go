package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexPickupCollection())
	panicIfError(m.IndexMessageCollection())
	panicIfError(m.IndexAuditLogCollection())
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"account_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexPickupCollection() error {
	// opportunities listing
	if err := m.createIndex(PickupCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	// a requester's own pickups
	if err := m.createIndex(PickupCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requester_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	// a volunteer's assigned pickups
	if err := m.createIndex(PickupCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "volunteer_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	// waste aggregation over completed pickups
	return m.createIndex(PickupCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "waste_type", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexMessageCollection() error {
	// thread queries
	if err := m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sender_id", Value: 1},
			{Key: "receiver_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	}); err != nil {
		return err
	}

	// unread marking
	if err := m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "receiver_id", Value: 1},
			{Key: "is_read", Value: 1},
		},
	}); err != nil {
		return err
	}

	// conversation aggregation scans both directions
	if err := m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sender_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "receiver_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexAuditLogCollection() error {
	if err := m.createIndex(AuditLogCollection, mongo.IndexModel{
		Keys: bson.M{
			"timestamp": -1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(AuditLogCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	})
}
