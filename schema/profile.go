package schema

const ProfileCollection = "profile"

// WasteStats holds the per-category completion counters of a
// requester. Field names correspond to WasteType.StatField values and
// are only ever mutated through $inc.
type WasteStats struct {
	Plastic int64 `json:"plastic" bson:"plastic"`
	Organic int64 `json:"organic" bson:"organic"`
	EWaste  int64 `json:"e_waste" bson:"e_waste"`
	Metal   int64 `json:"metal" bson:"metal"`
	Paper   int64 `json:"paper" bson:"paper"`
	Glass   int64 `json:"glass" bson:"glass"`
	Other   int64 `json:"other" bson:"other"`
}

// Profile is the per-account stats ledger document.
type Profile struct {
	AccountID             string     `json:"account_id" bson:"account_id"`
	TotalPickupsCompleted int64      `json:"total_pickups_completed" bson:"total_pickups_completed"`
	WasteStats            WasteStats `json:"waste_stats" bson:"waste_stats"`
}
