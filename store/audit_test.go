package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wastezero/wastezero-api/schema"
)

type AuditTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewAuditTestSuite(connURI, dbName string) *AuditTestSuite {
	return &AuditTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AuditTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *AuditTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *AuditTestSuite) TestInsertFillsDefaults() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	entry := schema.AuditEntry{
		Action:  schema.AuditPickupCreated,
		UserID:  "audit-user",
		Details: "pickup created",
	}
	s.NoError(store.InsertAuditEntry(&entry))
	s.False(entry.ID.IsZero())
	s.False(entry.Timestamp.IsZero())
}

func (s *AuditTestSuite) TestFindAuditEntriesNewestFirst() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, action := range []schema.AuditAction{
		schema.AuditPickupCreated,
		schema.AuditPickupAccepted,
		schema.AuditPickupCompleted,
	} {
		s.Require().NoError(store.InsertAuditEntry(&schema.AuditEntry{
			Action:    action,
			UserID:    "audit-order",
			Details:   "entry",
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}))
	}

	entries, err := store.FindAuditEntries(2)
	s.NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(schema.AuditPickupCompleted, entries[0].Action)
	s.Equal(schema.AuditPickupAccepted, entries[1].Action)
}

func TestAuditTestSuite(t *testing.T) {
	suite.Run(t, NewAuditTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
