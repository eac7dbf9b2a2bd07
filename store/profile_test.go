package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wastezero/wastezero-api/schema"
)

type ProfileTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewProfileTestSuite(connURI, dbName string) *ProfileTestSuite {
	return &ProfileTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ProfileTestSuite) SetupSuite() {
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

func (s *ProfileTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ProfileTestSuite) TestCreateAndFindProfile() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.CreateProfile("profile-find"))

	profile, err := store.FindProfile("profile-find")
	s.NoError(err)
	s.Equal("profile-find", profile.AccountID)
	s.Equal(int64(0), profile.TotalPickupsCompleted)
}

func (s *ProfileTestSuite) TestFindProfileMissing() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.FindProfile("profile-missing")
	s.Equal(ErrProfileNotFound, err)
}

func (s *ProfileTestSuite) TestIncrementCompletedCount() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.CreateProfile("profile-completed"))
	s.NoError(store.IncrementCompletedCount("profile-completed"))
	s.NoError(store.IncrementCompletedCount("profile-completed"))

	profile, err := store.FindProfile("profile-completed")
	s.NoError(err)
	s.Equal(int64(2), profile.TotalPickupsCompleted)
}

func (s *ProfileTestSuite) TestIncrementCompletedCountUpserts() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// no CreateProfile first; the increment must create the ledger
	s.NoError(store.IncrementCompletedCount("profile-upsert"))

	profile, err := store.FindProfile("profile-upsert")
	s.NoError(err)
	s.Equal(int64(1), profile.TotalPickupsCompleted)
}

func (s *ProfileTestSuite) TestIncrementWasteStat() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.CreateProfile("profile-waste"))
	s.NoError(store.IncrementWasteStat("profile-waste", schema.WastePlastic.StatField()))
	s.NoError(store.IncrementWasteStat("profile-waste", schema.WastePlastic.StatField()))
	s.NoError(store.IncrementWasteStat("profile-waste", schema.WasteEWaste.StatField()))
	s.NoError(store.IncrementWasteStat("profile-waste", schema.WasteType("Unknown").StatField()))

	profile, err := store.FindProfile("profile-waste")
	s.NoError(err)
	s.Equal(int64(2), profile.WasteStats.Plastic)
	s.Equal(int64(1), profile.WasteStats.EWaste)
	s.Equal(int64(1), profile.WasteStats.Other)
	s.Equal(int64(0), profile.WasteStats.Glass)
}

func (s *ProfileTestSuite) TestIncrementWasteStatConcurrent() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.CreateProfile("profile-race"))

	const increments = 10

	var wg sync.WaitGroup
	errs := make([]error, increments)
	for i := 0; i < increments; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = store.IncrementWasteStat("profile-race", "glass")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.NoError(err)
	}

	profile, err := store.FindProfile("profile-race")
	s.NoError(err)
	s.Equal(int64(increments), profile.WasteStats.Glass)
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, NewProfileTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
