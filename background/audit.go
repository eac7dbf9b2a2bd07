package background

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wastezero/wastezero-api/schema"
)

// RecordAuditEntry re-attempts an audit write that failed on the
// request path. A returned error makes machinery retry the task.
func (m *BackgroundManager) RecordAuditEntry(action, userID, performedBy, details string, ts int64) error {
	entry := schema.AuditEntry{
		Action:      schema.AuditAction(action),
		UserID:      userID,
		PerformedBy: performedBy,
		Details:     details,
		Timestamp:   time.Unix(ts, 0).UTC(),
	}

	if err := m.mongo.InsertAuditEntry(&entry); err != nil {
		log.WithField("prefix", "background").WithError(err).
			WithField("action", action).Error("audit entry retry failed")
		return err
	}

	return nil
}
