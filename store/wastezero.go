package store

import (
	"fmt"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/wastezero/wastezero-api/schema"
)

var ErrUnknownRole = fmt.Errorf("unrecognized actor role")

// wastezero main datastore
type WasteZeroCore interface {
	Ping() error

	// Accounts
	CreateAccount(name, email, username, passwordDigest string, role schema.Role) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	UpdateAccountProfile(id string, update AccountProfileUpdate) (*schema.Account, error)
	UpdateAccountPassword(id, passwordDigest string) error
	ToggleAccountSuspension(adminID, id string) (*schema.Account, error)
	DeleteAccount(adminID, id string) error
	ListVolunteers() ([]schema.Account, error)
	ListMembers(page, limit int64) ([]schema.Account, int64, error)
	ListAllAccounts() ([]schema.Account, error)

	// Pickup lifecycle
	CreatePickup(requester *schema.Account, params PickupParams) (*schema.Pickup, error)
	GetPickup(id string) (*schema.Pickup, error)
	ListOwnPickups(viewer *schema.Account, page, limit int64) ([]schema.Pickup, error)
	ListOpenPickups(page, limit int64) ([]schema.Pickup, int64, error)
	ListAllPickups(page, limit int64) ([]schema.Pickup, int64, error)
	AcceptPickup(volunteer *schema.Account, pickupID string) (*schema.Pickup, error)
	CompletePickup(actor *schema.Account, pickupID string) (*schema.Pickup, error)
	CancelPickup(actor *schema.Account, pickupID string) error
	DeletePickup(admin *schema.Account, pickupID string) error

	// Messaging
	SendMessage(sender *schema.Account, receiverID, content, pickupID string) (*schema.Message, error)
	ListConversations(viewerID string) ([]schema.Conversation, error)
	GetThread(viewerID, partnerID string, limit int64) ([]schema.Message, error)

	// Stats and reports
	RequesterDashboard(account *schema.Account) (*schema.RequesterStats, error)
	VolunteerDashboard(account *schema.Account) (*schema.VolunteerStats, error)
	PlatformStats() (*schema.PlatformStats, error)
	ListAuditEntries(limit int64) ([]schema.AuditEntry, error)
	WasteReport() (*schema.WasteReport, error)
	VolunteerReport() ([]schema.VolunteerReport, error)
}

// WasteZeroStore is an implementation of WasteZeroCore. Accounts live
// in Postgres; pickups, messages, audit entries and stat profiles live
// in MongoDB. The machinery server is the dead-letter path for audit
// entries whose direct write failed.
type WasteZeroStore struct {
	ormDB      *gorm.DB
	mongo      MongoStore
	background *machinery.Server
}

func NewWasteZeroStore(ormDB *gorm.DB, mongo MongoStore, background *machinery.Server) *WasteZeroStore {
	return &WasteZeroStore{
		ormDB:      ormDB,
		mongo:      mongo,
		background: background,
	}
}

// Ping is to check the storage health status
func (s *WasteZeroStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

// AuditRetryTaskName is the machinery task that re-attempts an audit
// insert which failed inline.
const AuditRetryTaskName = "record_audit_entry"

// recordAudit appends an audit entry for a transition that already
// committed. It never propagates failure: the primary mutation is the
// authority on success. A failed insert is logged and handed to the
// background queue; only if enqueueing also fails is the entry
// reported as lost.
func (s *WasteZeroStore) recordAudit(action schema.AuditAction, userID, performedBy, details string) {
	entry := &schema.AuditEntry{
		Action:      action,
		UserID:      userID,
		PerformedBy: performedBy,
		Details:     details,
		Timestamp:   time.Now().UTC(),
	}

	err := s.mongo.InsertAuditEntry(entry)
	if err == nil {
		return
	}

	log.WithFields(log.Fields{
		"prefix": "audit",
		"action": action,
		"error":  err,
	}).Error("audit entry write failed, enqueueing retry")

	if s.background == nil {
		log.WithFields(log.Fields{
			"prefix": "audit",
			"action": action,
		}).Error("no background queue configured, audit entry lost")
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name:       AuditRetryTaskName,
		RetryCount: 5,
		Args: []tasks.Arg{
			{Type: "string", Value: string(action)},
			{Type: "string", Value: userID},
			{Type: "string", Value: performedBy},
			{Type: "string", Value: details},
			{Type: "int64", Value: entry.Timestamp.Unix()},
		},
	}); err != nil {
		log.WithFields(log.Fields{
			"prefix": "audit",
			"action": action,
			"error":  err,
		}).Error("audit entry lost")
	}
}

// logPartialFailure reports a post-commit side effect that failed
// after the primary transition already committed. The transition is
// not rolled back.
func logPartialFailure(what, pickupID string, err error) {
	log.WithFields(log.Fields{
		"prefix": "store",
		"pickup": pickupID,
		"error":  err,
	}).Errorf("post-commit update failed: %s", what)
}

// accountDigests loads the display shapes for a set of account ids in
// one query. Missing accounts (deleted users) are simply absent from
// the map.
func (s *WasteZeroStore) accountDigests(ids []string) (map[string]*schema.UserDigest, error) {
	digests := make(map[string]*schema.UserDigest)
	if len(ids) == 0 {
		return digests, nil
	}

	var accounts []schema.Account
	if err := s.ormDB.Where("id IN (?)", ids).Find(&accounts).Error; err != nil {
		return nil, err
	}

	for i := range accounts {
		digests[accounts[i].ID.String()] = accounts[i].Digest()
	}
	return digests, nil
}

// attachPickupDigests joins requester and volunteer display identities
// onto pickups. Join failures only cost display data, never the
// operation itself.
func (s *WasteZeroStore) attachPickupDigests(pickups ...*schema.Pickup) {
	ids := make([]string, 0, 2*len(pickups))
	for _, p := range pickups {
		ids = append(ids, p.RequesterID)
		if p.VolunteerID != nil {
			ids = append(ids, *p.VolunteerID)
		}
	}

	digests, err := s.accountDigests(ids)
	if err != nil {
		log.WithField("prefix", "store").WithError(err).Error("join pickup participants")
		return
	}

	for _, p := range pickups {
		p.Requester = digests[p.RequesterID]
		if p.VolunteerID != nil {
			p.Volunteer = digests[*p.VolunteerID]
		}
	}
}

// attachMessageDigests joins sender and receiver display identities
// onto messages.
func (s *WasteZeroStore) attachMessageDigests(messages []schema.Message) {
	ids := make([]string, 0, 2*len(messages))
	for i := range messages {
		ids = append(ids, messages[i].SenderID, messages[i].ReceiverID)
	}

	digests, err := s.accountDigests(ids)
	if err != nil {
		log.WithField("prefix", "store").WithError(err).Error("join message participants")
		return
	}

	for i := range messages {
		messages[i].Sender = digests[messages[i].SenderID]
		messages[i].Receiver = digests[messages[i].ReceiverID]
	}
}

// attachAuditDigests joins subject and actor display identities onto
// audit entries.
func (s *WasteZeroStore) attachAuditDigests(entries []schema.AuditEntry) {
	ids := make([]string, 0, 2*len(entries))
	for i := range entries {
		if entries[i].UserID != "" {
			ids = append(ids, entries[i].UserID)
		}
		if entries[i].PerformedBy != "" {
			ids = append(ids, entries[i].PerformedBy)
		}
	}

	digests, err := s.accountDigests(ids)
	if err != nil {
		log.WithField("prefix", "store").WithError(err).Error("join audit participants")
		return
	}

	for i := range entries {
		entries[i].User = digests[entries[i].UserID]
		entries[i].Actor = digests[entries[i].PerformedBy]
	}
}
