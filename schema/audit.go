package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AuditLogCollection = "audit_log"

// AuditAction is the closed set of recorded action tags.
type AuditAction string

const (
	AuditPickupCreated   AuditAction = "PICKUP_CREATED"
	AuditPickupAccepted  AuditAction = "PICKUP_ACCEPTED"
	AuditPickupCompleted AuditAction = "PICKUP_COMPLETED"
	AuditPickupCancelled AuditAction = "PICKUP_CANCELLED"
	AuditPickupDeleted   AuditAction = "PICKUP_DELETED"
	AuditUserSuspended   AuditAction = "USER_SUSPENDED"
	AuditUserActivated   AuditAction = "USER_ACTIVATED"
	AuditUserDeleted     AuditAction = "USER_DELETED"
)

// AuditEntry is one append-only record of a state-changing action.
// Entries are never updated or deleted in normal operation.
type AuditEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Action      AuditAction        `json:"action" bson:"action"`
	UserID      string             `json:"user_id,omitempty" bson:"user_id,omitempty"`
	PerformedBy string             `json:"performed_by,omitempty" bson:"performed_by,omitempty"`
	Details     string             `json:"details" bson:"details"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`

	// read-side joins, never persisted
	User  *UserDigest `json:"user,omitempty" bson:"-"`
	Actor *UserDigest `json:"actor,omitempty" bson:"-"`
}
