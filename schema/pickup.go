package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PickupCollection = "pickup"

// PickupStatus is the lifecycle state of a pickup request. Transitions
// are monotonic: Open -> Accepted -> Completed, with Cancelled
// reachable from Open and Accepted only.
type PickupStatus string

const (
	PickupOpen      PickupStatus = "Open"
	PickupAccepted  PickupStatus = "Accepted"
	PickupCompleted PickupStatus = "Completed"
	PickupCancelled PickupStatus = "Cancelled"
)

// WasteType is the closed waste category enum persisted on pickups.
type WasteType string

const (
	WastePlastic WasteType = "Plastic"
	WasteOrganic WasteType = "Organic"
	WasteEWaste  WasteType = "E-Waste"
	WasteMetal   WasteType = "Metal"
	WastePaper   WasteType = "Paper"
	WasteGlass   WasteType = "Glass"
	WasteOther   WasteType = "Other"
)

func (w WasteType) Valid() bool {
	switch w {
	case WastePlastic, WasteOrganic, WasteEWaste, WasteMetal, WastePaper, WasteGlass, WasteOther:
		return true
	default:
		return false
	}
}

// StatField maps a waste type to the profile counter field incremented
// on completion. Unmapped types fall into the "other" bucket.
func (w WasteType) StatField() string {
	switch w {
	case WastePlastic:
		return "plastic"
	case WasteOrganic:
		return "organic"
	case WasteEWaste:
		return "e_waste"
	case WasteMetal:
		return "metal"
	case WastePaper:
		return "paper"
	case WasteGlass:
		return "glass"
	default:
		return "other"
	}
}

// Pickup is a waste pickup request document.
//
// Invariants: volunteer_id is set iff status is Accepted or Completed;
// completed_at is set iff status is Completed.
type Pickup struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title"`
	RequesterID       string             `json:"requester_id" bson:"requester_id"`
	VolunteerID       *string            `json:"volunteer_id" bson:"volunteer_id"`
	WasteType         WasteType          `json:"waste_type" bson:"waste_type"`
	Description       string             `json:"description" bson:"description"`
	EstimatedQuantity string             `json:"estimated_quantity" bson:"estimated_quantity"`
	Address           string             `json:"address" bson:"address"`
	PreferredDate     time.Time          `json:"preferred_date" bson:"preferred_date"`
	PreferredTime     string             `json:"preferred_time" bson:"preferred_time"`
	ContactDetails    string             `json:"contact_details" bson:"contact_details"`
	Status            PickupStatus       `json:"status" bson:"status"`
	CompletedAt       *time.Time         `json:"completed_at" bson:"completed_at"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`

	// read-side joins, never persisted
	Requester *UserDigest `json:"requester,omitempty" bson:"-"`
	Volunteer *UserDigest `json:"volunteer,omitempty" bson:"-"`
}

// WasteTypeCount is one bucket of the completed-pickup aggregation.
type WasteTypeCount struct {
	WasteType WasteType `json:"waste_type" bson:"_id"`
	Count     int64     `json:"count" bson:"count"`
}

// MonthlyPickupCount is one month of the pickup trend aggregation.
type MonthlyPickupCount struct {
	Year      int32 `json:"year" bson:"year"`
	Month     int32 `json:"month" bson:"month"`
	Total     int64 `json:"total" bson:"total"`
	Completed int64 `json:"completed" bson:"completed"`
}

// PickupTally counts a volunteer's accepted and completed pickups.
type PickupTally struct {
	Accepted  int64 `json:"accepted"`
	Completed int64 `json:"completed"`
}
