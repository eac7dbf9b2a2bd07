package store

import (
	"github.com/wastezero/wastezero-api/schema"
)

// RequesterDashboard assembles the requester's own stats: pickup
// counts and their waste ledger.
func (s *WasteZeroStore) RequesterDashboard(account *schema.Account) (*schema.RequesterStats, error) {
	requesterID := account.ID.String()

	total, err := s.mongo.CountPickups(PickupFilter{RequesterID: requesterID})
	if err != nil {
		return nil, err
	}

	completed, err := s.mongo.CountPickups(PickupFilter{
		RequesterID: requesterID,
		Statuses:    []schema.PickupStatus{schema.PickupCompleted},
	})
	if err != nil {
		return nil, err
	}

	pending, err := s.mongo.CountPickups(PickupFilter{
		RequesterID: requesterID,
		Statuses:    []schema.PickupStatus{schema.PickupOpen, schema.PickupAccepted},
	})
	if err != nil {
		return nil, err
	}

	stats := &schema.RequesterStats{
		Name:      account.Name,
		Total:     total,
		Completed: completed,
		Pending:   pending,
	}

	profile, err := s.mongo.FindProfile(requesterID)
	switch err {
	case nil:
		stats.WasteStats = profile.WasteStats
	case ErrProfileNotFound:
		// nothing completed yet, counters stay zero
	default:
		return nil, err
	}

	return stats, nil
}

// VolunteerDashboard assembles the volunteer's own stats.
func (s *WasteZeroStore) VolunteerDashboard(account *schema.Account) (*schema.VolunteerStats, error) {
	volunteerID := account.ID.String()

	available, err := s.mongo.CountPickups(PickupFilter{
		Statuses: []schema.PickupStatus{schema.PickupOpen},
	})
	if err != nil {
		return nil, err
	}

	accepted, err := s.mongo.CountPickups(PickupFilter{
		VolunteerID: volunteerID,
		Statuses:    []schema.PickupStatus{schema.PickupAccepted},
	})
	if err != nil {
		return nil, err
	}

	completed, err := s.mongo.CountPickups(PickupFilter{
		VolunteerID: volunteerID,
		Statuses:    []schema.PickupStatus{schema.PickupCompleted},
	})
	if err != nil {
		return nil, err
	}

	return &schema.VolunteerStats{
		Name:      account.Name,
		Available: available,
		Accepted:  accepted,
		Completed: completed,
	}, nil
}

// PlatformStats assembles the admin overview.
func (s *WasteZeroStore) PlatformStats() (*schema.PlatformStats, error) {
	stats := &schema.PlatformStats{}

	var err error
	if stats.TotalRequesters, err = s.countAccountsByRole(schema.RoleRequester); err != nil {
		return nil, err
	}
	if stats.TotalVolunteers, err = s.countAccountsByRole(schema.RoleVolunteer); err != nil {
		return nil, err
	}
	if stats.TotalAdmins, err = s.countAccountsByRole(schema.RoleAdmin); err != nil {
		return nil, err
	}

	if stats.TotalPickups, err = s.mongo.CountPickups(PickupFilter{}); err != nil {
		return nil, err
	}
	if stats.CompletedPickups, err = s.mongo.CountPickups(PickupFilter{
		Statuses: []schema.PickupStatus{schema.PickupCompleted},
	}); err != nil {
		return nil, err
	}
	if stats.PendingPickups, err = s.mongo.CountPickups(PickupFilter{
		Statuses: []schema.PickupStatus{schema.PickupOpen, schema.PickupAccepted},
	}); err != nil {
		return nil, err
	}
	if stats.CancelledPickups, err = s.mongo.CountPickups(PickupFilter{
		Statuses: []schema.PickupStatus{schema.PickupCancelled},
	}); err != nil {
		return nil, err
	}

	if stats.WasteByType, err = s.mongo.AggregateWasteByType(); err != nil {
		return nil, err
	}

	if stats.RecentActivity, err = s.mongo.FindAuditEntries(10); err != nil {
		return nil, err
	}
	s.attachAuditDigests(stats.RecentActivity)

	return stats, nil
}

// ListAuditEntries returns the newest audit entries with participant
// identities joined on.
func (s *WasteZeroStore) ListAuditEntries(limit int64) ([]schema.AuditEntry, error) {
	entries, err := s.mongo.FindAuditEntries(limit)
	if err != nil {
		return nil, err
	}

	s.attachAuditDigests(entries)
	return entries, nil
}

// WasteReport assembles the waste breakdown and monthly trend.
func (s *WasteZeroStore) WasteReport() (*schema.WasteReport, error) {
	byType, err := s.mongo.AggregateWasteByType()
	if err != nil {
		return nil, err
	}

	trend, err := s.mongo.MonthlyPickupTrend()
	if err != nil {
		return nil, err
	}

	return &schema.WasteReport{
		WasteByType:  byType,
		MonthlyTrend: trend,
	}, nil
}

// VolunteerReport merges volunteer accounts with their pickup tallies
// from a single aggregation.
func (s *WasteZeroStore) VolunteerReport() ([]schema.VolunteerReport, error) {
	volunteers, err := s.ListVolunteers()
	if err != nil {
		return nil, err
	}

	tallies, err := s.mongo.VolunteerPickupCounts()
	if err != nil {
		return nil, err
	}

	report := make([]schema.VolunteerReport, 0, len(volunteers))
	for _, v := range volunteers {
		tally := tallies[v.ID.String()]
		report = append(report, schema.VolunteerReport{
			Account:          v,
			AcceptedPickups:  tally.Accepted,
			CompletedPickups: tally.Completed,
		})
	}

	return report, nil
}
