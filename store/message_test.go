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

type MessageTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewMessageTestSuite(connURI, dbName string) *MessageTestSuite {
	return &MessageTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MessageTestSuite) SetupSuite() {
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

func (s *MessageTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// sendMessage inserts a message and spaces timestamps out so ordering
// assertions are stable.
func (s *MessageTestSuite) sendMessage(store MongoStore, sender, receiver, content string) *schema.Message {
	message, err := store.InsertMessage(&schema.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
	})
	s.Require().NoError(err)
	time.Sleep(5 * time.Millisecond)
	return message
}

func (s *MessageTestSuite) TestInsertMessageAlwaysUnread() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	message, err := store.InsertMessage(&schema.Message{
		SenderID:   "sender-unread",
		ReceiverID: "receiver-unread",
		Content:    "hello",
		IsRead:     true,
	})
	s.NoError(err)
	s.False(message.IsRead, "inserted messages always start unread")
	s.False(message.Timestamp.IsZero())
}

func (s *MessageTestSuite) TestAggregateConversations() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// alice talks to bob first, then to carol; carol's thread has the
	// most recent activity and two unread messages for alice
	s.sendMessage(store, "agg-alice", "agg-bob", "hey bob")
	s.sendMessage(store, "agg-bob", "agg-alice", "hey alice")
	s.sendMessage(store, "agg-carol", "agg-alice", "pickup still on?")
	s.sendMessage(store, "agg-carol", "agg-alice", "I can come earlier")

	conversations, err := store.AggregateConversations("agg-alice")
	s.NoError(err)
	s.Require().Len(conversations, 2)

	s.Equal("agg-carol", conversations[0].PartnerID, "newest activity first")
	s.Equal("I can come earlier", conversations[0].LastMessage.Content)
	s.Equal(int64(2), conversations[0].UnreadCount)

	s.Equal("agg-bob", conversations[1].PartnerID)
	s.Equal("hey alice", conversations[1].LastMessage.Content)
	s.Equal(int64(1), conversations[1].UnreadCount)
}

func (s *MessageTestSuite) TestAggregateConversationsCountsOnlyInbound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// dave sent two messages nobody read; his own view has no unread
	s.sendMessage(store, "agg-dave", "agg-erin", "are you there?")
	s.sendMessage(store, "agg-dave", "agg-erin", "ping")

	conversations, err := store.AggregateConversations("agg-dave")
	s.NoError(err)
	s.Require().Len(conversations, 1)
	s.Equal(int64(0), conversations[0].UnreadCount, "own outbound messages are not unread for the sender")
}

func (s *MessageTestSuite) TestMarkThreadRead() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.sendMessage(store, "read-frank", "read-grace", "first")
	s.sendMessage(store, "read-frank", "read-grace", "second")
	s.sendMessage(store, "read-grace", "read-frank", "reply")

	modified, err := store.MarkThreadRead("read-grace", "read-frank")
	s.NoError(err)
	s.Equal(int64(2), modified)

	// second call is a no-op
	modified, err = store.MarkThreadRead("read-grace", "read-frank")
	s.NoError(err)
	s.Equal(int64(0), modified)

	// frank's inbound message stays unread
	conversations, err := store.AggregateConversations("read-frank")
	s.NoError(err)
	s.Require().Len(conversations, 1)
	s.Equal(int64(1), conversations[0].UnreadCount)
}

func (s *MessageTestSuite) TestFindThreadOrdering() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.sendMessage(store, "thr-henry", "thr-iris", "one")
	s.sendMessage(store, "thr-iris", "thr-henry", "two")
	s.sendMessage(store, "thr-henry", "thr-iris", "three")
	s.sendMessage(store, "thr-henry", "thr-jack", "unrelated")

	messages, err := store.FindThread("thr-henry", "thr-iris", 100)
	s.NoError(err)
	s.Require().Len(messages, 3)
	s.Equal("one", messages[0].Content)
	s.Equal("two", messages[1].Content)
	s.Equal("three", messages[2].Content)
}

func TestMessageTestSuite(t *testing.T) {
	suite.Run(t, NewMessageTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
