package store

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wastezero/wastezero-api/schema"
)

const (
	defaultThreadLimit = 100
	maxThreadLimit     = 200
)

// SendMessage validates and appends a new message. The receiver must
// exist and the content must be non-empty after trimming.
func (s *WasteZeroStore) SendMessage(sender *schema.Account, receiverID, content, pickupID string) (*schema.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessageContent
	}

	receiver, err := s.GetAccount(receiverID)
	if err != nil {
		return nil, err
	}

	message := &schema.Message{
		SenderID:   sender.ID.String(),
		ReceiverID: receiver.ID.String(),
		Content:    content,
	}

	if pickupID != "" {
		oid, err := primitive.ObjectIDFromHex(pickupID)
		if err != nil {
			return nil, ErrPickupNotFound
		}
		message.PickupID = &oid
	}

	message, err = s.mongo.InsertMessage(message)
	if err != nil {
		return nil, err
	}

	message.Sender = sender.Digest()
	message.Receiver = receiver.Digest()
	return message, nil
}

// ListConversations returns the viewer's conversation summaries with
// partner display identities joined on.
func (s *WasteZeroStore) ListConversations(viewerID string) ([]schema.Conversation, error) {
	conversations, err := s.mongo.AggregateConversations(viewerID)
	if err != nil {
		return nil, err
	}

	partnerIDs := make([]string, 0, len(conversations))
	for i := range conversations {
		partnerIDs = append(partnerIDs, conversations[i].PartnerID)
	}

	digests, err := s.accountDigests(partnerIDs)
	if err != nil {
		log.WithField("prefix", "store").WithError(err).Error("join conversation partners")
	} else {
		for i := range conversations {
			conversations[i].Partner = digests[conversations[i].PartnerID]
		}
	}

	return conversations, nil
}

// GetThread returns the messages between the viewer and a partner,
// oldest first, and marks every unread message addressed to the viewer
// as read. The mark is a single idempotent update; the returned
// messages keep the read flags they had at fetch time.
func (s *WasteZeroStore) GetThread(viewerID, partnerID string, limit int64) ([]schema.Message, error) {
	if limit <= 0 {
		limit = defaultThreadLimit
	}
	if limit > maxThreadLimit {
		limit = maxThreadLimit
	}

	messages, err := s.mongo.FindThread(viewerID, partnerID, limit)
	if err != nil {
		return nil, err
	}

	if _, err := s.mongo.MarkThreadRead(viewerID, partnerID); err != nil {
		// unread counts are recomputed from the flags, so a missed
		// mark only means the messages stay unread until the next read
		log.WithField("prefix", "store").WithError(err).Error("mark thread read")
	}

	s.attachMessageDigests(messages)
	return messages, nil
}
