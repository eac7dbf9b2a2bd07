package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MessageCollection = "message"

// Message is a single chat message. It is immutable once written
// except for IsRead, which only ever flips false to true.
type Message struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	SenderID   string              `json:"sender_id" bson:"sender_id"`
	ReceiverID string              `json:"receiver_id" bson:"receiver_id"`
	PickupID   *primitive.ObjectID `json:"pickup_id" bson:"pickup_id"`
	Content    string              `json:"content" bson:"content"`
	IsRead     bool                `json:"is_read" bson:"is_read"`
	Timestamp  time.Time           `json:"timestamp" bson:"timestamp"`

	// read-side joins, never persisted
	Sender   *UserDigest `json:"sender,omitempty" bson:"-"`
	Receiver *UserDigest `json:"receiver,omitempty" bson:"-"`
}

// Conversation is the derived summary of a two-party thread relative
// to a viewer. It is recomputed on demand and never persisted; the
// unread count always comes from the stored is_read flags.
type Conversation struct {
	PartnerID   string      `json:"-" bson:"_id"`
	Partner     *UserDigest `json:"partner" bson:"-"`
	LastMessage *Message    `json:"last_message" bson:"last_message"`
	UnreadCount int64       `json:"unread_count" bson:"unread_count"`
}
