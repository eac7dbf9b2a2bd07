package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wastezero/wastezero-api/schema"
)

type PickupTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewPickupTestSuite(connURI, dbName string) *PickupTestSuite {
	return &PickupTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *PickupTestSuite) SetupSuite() {
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

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *PickupTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *PickupTestSuite) insertOpenPickup(store MongoStore, requesterID string) *schema.Pickup {
	pickup, err := store.InsertPickup(&schema.Pickup{
		Title:             "cardboard boxes",
		RequesterID:       requesterID,
		WasteType:         schema.WastePaper,
		EstimatedQuantity: "3 bags",
		Address:           "5 Elm St",
		PreferredDate:     time.Now().UTC().AddDate(0, 0, 1),
		PreferredTime:     "morning",
	})
	s.Require().NoError(err)
	s.Require().Equal(schema.PickupOpen, pickup.Status)
	s.Require().Nil(pickup.VolunteerID)
	return pickup
}

func (s *PickupTestSuite) TestAcceptPickup() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-accept")

	accepted, err := store.AcceptPickup(pickup.ID.Hex(), "volunteer-accept")
	s.NoError(err)
	s.Equal(schema.PickupAccepted, accepted.Status)
	s.Require().NotNil(accepted.VolunteerID)
	s.Equal("volunteer-accept", *accepted.VolunteerID)
}

func (s *PickupTestSuite) TestAcceptPickupAlreadyAccepted() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-taken")

	_, err := store.AcceptPickup(pickup.ID.Hex(), "volunteer-first")
	s.NoError(err)

	_, err = store.AcceptPickup(pickup.ID.Hex(), "volunteer-second")
	s.Equal(ErrPickupTaken, err)

	// the winner must not be overwritten
	current, err := store.FindPickup(pickup.ID.Hex())
	s.NoError(err)
	s.Require().NotNil(current.VolunteerID)
	s.Equal("volunteer-first", *current.VolunteerID)
}

func (s *PickupTestSuite) TestAcceptPickupNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.AcceptPickup("5e81ea5310b1c61ba1b2f0a1", "volunteer-x")
	s.Equal(ErrPickupNotFound, err)
}

func (s *PickupTestSuite) TestAcceptPickupConcurrent() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-race")

	const volunteers = 8

	var wg sync.WaitGroup
	errs := make([]error, volunteers)

	for i := 0; i < volunteers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = store.AcceptPickup(pickup.ID.Hex(), "volunteer-"+string(rune('a'+n)))
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		switch err {
		case nil:
			won++
		case ErrPickupTaken:
		default:
			s.T().Fatalf("unexpected accept error: %s", err)
		}
	}
	s.Equal(1, won, "exactly one volunteer should win the race")
}

func (s *PickupTestSuite) TestCompletePickupRequiresAccepted() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-complete-open")

	_, err := store.CompletePickup(pickup.ID.Hex(), "volunteer-x", false)
	s.Equal(ErrPickupNotAccepted, err)
}

func (s *PickupTestSuite) TestCompletePickupWrongVolunteer() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-complete-wrong")

	_, err := store.AcceptPickup(pickup.ID.Hex(), "volunteer-assigned")
	s.Require().NoError(err)

	_, err = store.CompletePickup(pickup.ID.Hex(), "volunteer-other", false)
	s.Equal(ErrNotAssignedVolunteer, err)
}

func (s *PickupTestSuite) TestCompletePickup() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-complete")

	_, err := store.AcceptPickup(pickup.ID.Hex(), "volunteer-done")
	s.Require().NoError(err)

	completed, err := store.CompletePickup(pickup.ID.Hex(), "volunteer-done", false)
	s.NoError(err)
	s.Equal(schema.PickupCompleted, completed.Status)
	s.Require().NotNil(completed.CompletedAt)
	s.False(completed.CompletedAt.IsZero())
}

func (s *PickupTestSuite) TestCompletePickupAsAdmin() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-admin-complete")

	_, err := store.AcceptPickup(pickup.ID.Hex(), "volunteer-assigned")
	s.Require().NoError(err)

	completed, err := store.CompletePickup(pickup.ID.Hex(), "admin-1", true)
	s.NoError(err)
	s.Equal(schema.PickupCompleted, completed.Status)
	s.Require().NotNil(completed.VolunteerID)
	s.Equal("volunteer-assigned", *completed.VolunteerID)
}

func (s *PickupTestSuite) TestCancelPickupByOwner() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-cancel")

	cancelled, err := store.CancelPickup(pickup.ID.Hex(), "requester-cancel")
	s.NoError(err)
	s.Equal(schema.PickupCancelled, cancelled.Status)
}

func (s *PickupTestSuite) TestCancelPickupByStranger() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-cancel-owner")

	_, err := store.CancelPickup(pickup.ID.Hex(), "requester-other")
	s.Equal(ErrNotPickupOwner, err)
}

func (s *PickupTestSuite) TestCancelCompletedPickup() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-cancel-closed")

	_, err := store.AcceptPickup(pickup.ID.Hex(), "volunteer-closed")
	s.Require().NoError(err)
	_, err = store.CompletePickup(pickup.ID.Hex(), "volunteer-closed", false)
	s.Require().NoError(err)

	_, err = store.CancelPickup(pickup.ID.Hex(), "requester-cancel-closed")
	s.Equal(ErrPickupClosed, err)
}

func (s *PickupTestSuite) TestCancelCancelledPickup() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-cancel-twice")

	_, err := store.CancelPickup(pickup.ID.Hex(), "requester-cancel-twice")
	s.Require().NoError(err)

	_, err = store.CancelPickup(pickup.ID.Hex(), "requester-cancel-twice")
	s.Equal(ErrPickupClosed, err)
}

func (s *PickupTestSuite) TestRemovePickup() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	pickup := s.insertOpenPickup(store, "requester-remove")

	removed, err := store.RemovePickup(pickup.ID.Hex())
	s.NoError(err)
	s.Equal(pickup.ID, removed.ID)

	_, err = store.FindPickup(pickup.ID.Hex())
	s.Equal(ErrPickupNotFound, err)
}

func TestPickupTestSuite(t *testing.T) {
	suite.Run(t, NewPickupTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
