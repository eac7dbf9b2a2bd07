package schema

// RequesterStats is the dashboard payload for a requester.
type RequesterStats struct {
	Name       string     `json:"name"`
	Total      int64      `json:"total"`
	Completed  int64      `json:"completed"`
	Pending    int64      `json:"pending"`
	WasteStats WasteStats `json:"waste_stats"`
}

// VolunteerStats is the dashboard payload for a volunteer.
type VolunteerStats struct {
	Name      string `json:"name"`
	Available int64  `json:"available"`
	Accepted  int64  `json:"accepted"`
	Completed int64  `json:"completed"`
}

// PlatformStats is the admin overview payload.
type PlatformStats struct {
	TotalRequesters  int64            `json:"total_requesters"`
	TotalVolunteers  int64            `json:"total_volunteers"`
	TotalAdmins      int64            `json:"total_admins"`
	TotalPickups     int64            `json:"total_pickups"`
	CompletedPickups int64            `json:"completed_pickups"`
	PendingPickups   int64            `json:"pending_pickups"`
	CancelledPickups int64            `json:"cancelled_pickups"`
	WasteByType      []WasteTypeCount `json:"waste_by_type"`
	RecentActivity   []AuditEntry     `json:"recent_activity"`
}

// WasteReport is the admin waste report payload.
type WasteReport struct {
	WasteByType  []WasteTypeCount     `json:"waste_by_type"`
	MonthlyTrend []MonthlyPickupCount `json:"monthly_trend"`
}

// VolunteerReport is one volunteer row of the admin volunteer report.
type VolunteerReport struct {
	Account
	AcceptedPickups  int64 `json:"accepted_pickups"`
	CompletedPickups int64 `json:"completed_pickups"`
}
