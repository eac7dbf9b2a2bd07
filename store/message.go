package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wastezero/wastezero-api/schema"
)

const conversationFanOutLimit = 50

var ErrEmptyMessageContent = fmt.Errorf("message content is empty")

// MessageOperator owns the flat message log and the derived
// conversation views.
type MessageOperator interface {
	InsertMessage(message *schema.Message) (*schema.Message, error)
	AggregateConversations(viewerID string) ([]schema.Conversation, error)
	FindThread(viewerID, partnerID string, limit int64) ([]schema.Message, error)
	MarkThreadRead(viewerID, partnerID string) (int64, error)
}

func (m mongoDB) messageCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.MessageCollection)
}

func (m mongoDB) InsertMessage(message *schema.Message) (*schema.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	message.ID = primitive.NewObjectID()
	message.IsRead = false
	message.Timestamp = time.Now().UTC()

	if _, err := m.messageCollection().InsertOne(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// AggregateConversations derives the viewer's conversation list in one
// aggregation: partition messages by the other participant, keep the
// newest message per partition as representative, and count unread
// messages addressed to the viewer. Partitions are ordered newest
// first and capped to bound the fan-out.
func (m mongoDB) AggregateConversations(viewerID string) ([]schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"$or": bson.A{
			bson.M{"sender_id": viewerID},
			bson.M{"receiver_id": viewerID},
		}}},
		{"$sort": bson.M{"timestamp": -1}},
		{"$group": bson.M{
			"_id": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$sender_id", viewerID}},
				"$receiver_id",
				"$sender_id",
			}},
			"last_message": bson.M{"$first": "$$ROOT"},
			"unread_count": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$receiver_id", viewerID}},
						bson.M{"$eq": bson.A{"$is_read", false}},
					}},
					1, 0,
				},
			}},
		}},
		{"$sort": bson.M{"last_message.timestamp": -1}},
		{"$limit": conversationFanOutLimit},
	}

	cursor, err := m.messageCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	conversations := make([]schema.Conversation, 0)
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}

// FindThread returns the messages between two participants ordered by
// timestamp ascending.
func (m mongoDB) FindThread(viewerID, partnerID string, limit int64) ([]schema.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"$or": bson.A{
		bson.M{"sender_id": viewerID, "receiver_id": partnerID},
		bson.M{"sender_id": partnerID, "receiver_id": viewerID},
	}}

	opts := options.Find().
		SetSort(bson.M{"timestamp": 1}).
		SetLimit(limit)

	cursor, err := m.messageCollection().Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	messages := make([]schema.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkThreadRead flips every unread message from partner to viewer to
// read. The update is idempotent per message, so concurrent calls for
// the same viewer cannot race into an inconsistent state.
func (m mongoDB) MarkThreadRead(viewerID, partnerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.messageCollection().UpdateMany(ctx,
		bson.M{
			"sender_id":   partnerID,
			"receiver_id": viewerID,
			"is_read":     false,
		},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
