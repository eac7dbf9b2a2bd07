package store

import (
	"fmt"
	"time"

	"github.com/wastezero/wastezero-api/schema"
)

// PickupParams carries the caller-controlled fields of a new pickup.
// Status is never part of it: new pickups always start Open.
type PickupParams struct {
	Title             string
	WasteType         schema.WasteType
	Description       string
	EstimatedQuantity string
	Address           string
	PreferredDate     time.Time
	PreferredTime     string
	ContactDetails    string
}

// CreatePickup stores a new pickup request for a requester and audits
// the creation.
func (s *WasteZeroStore) CreatePickup(requester *schema.Account, params PickupParams) (*schema.Pickup, error) {
	pickup, err := s.mongo.InsertPickup(&schema.Pickup{
		Title:             params.Title,
		RequesterID:       requester.ID.String(),
		WasteType:         params.WasteType,
		Description:       params.Description,
		EstimatedQuantity: params.EstimatedQuantity,
		Address:           params.Address,
		PreferredDate:     params.PreferredDate,
		PreferredTime:     params.PreferredTime,
		ContactDetails:    params.ContactDetails,
	})
	if err != nil {
		return nil, err
	}

	s.recordAudit(schema.AuditPickupCreated, requester.ID.String(), "",
		fmt.Sprintf("pickup %q created by %s", pickup.Title, requester.Name))

	s.attachPickupDigests(pickup)
	return pickup, nil
}

func (s *WasteZeroStore) GetPickup(id string) (*schema.Pickup, error) {
	pickup, err := s.mongo.FindPickup(id)
	if err != nil {
		return nil, err
	}

	s.attachPickupDigests(pickup)
	return pickup, nil
}

// ListOwnPickups returns the pickups a viewer is entitled to see: a
// requester sees their own, a volunteer the ones assigned to them, an
// admin all of them.
func (s *WasteZeroStore) ListOwnPickups(viewer *schema.Account, page, limit int64) ([]schema.Pickup, error) {
	var filter PickupFilter
	switch viewer.Role {
	case schema.RoleRequester:
		filter.RequesterID = viewer.ID.String()
	case schema.RoleVolunteer:
		filter.VolunteerID = viewer.ID.String()
	case schema.RoleAdmin:
	default:
		return nil, ErrUnknownRole
	}

	pickups, err := s.mongo.FindPickups(filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	s.attachPickupSliceDigests(pickups)
	return pickups, nil
}

// ListOpenPickups is the opportunities view: open pickups only, newest
// first, regardless of who is asking.
func (s *WasteZeroStore) ListOpenPickups(page, limit int64) ([]schema.Pickup, int64, error) {
	filter := PickupFilter{Statuses: []schema.PickupStatus{schema.PickupOpen}}

	total, err := s.mongo.CountPickups(filter)
	if err != nil {
		return nil, 0, err
	}

	pickups, err := s.mongo.FindPickups(filter, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	s.attachPickupSliceDigests(pickups)
	return pickups, total, nil
}

func (s *WasteZeroStore) ListAllPickups(page, limit int64) ([]schema.Pickup, int64, error) {
	total, err := s.mongo.CountPickups(PickupFilter{})
	if err != nil {
		return nil, 0, err
	}

	pickups, err := s.mongo.FindPickups(PickupFilter{}, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	s.attachPickupSliceDigests(pickups)
	return pickups, total, nil
}

// AcceptPickup claims an open pickup for a volunteer. The storage
// update is conditional on the pickup still being Open, so two racing
// volunteers produce exactly one winner; the loser gets ErrPickupTaken
// and no second audit entry is written.
func (s *WasteZeroStore) AcceptPickup(volunteer *schema.Account, pickupID string) (*schema.Pickup, error) {
	pickup, err := s.mongo.AcceptPickup(pickupID, volunteer.ID.String())
	if err != nil {
		return nil, err
	}

	s.recordAudit(schema.AuditPickupAccepted, volunteer.ID.String(), "",
		fmt.Sprintf("pickup %q accepted by %s", pickup.Title, volunteer.Name))

	s.attachPickupDigests(pickup)
	return pickup, nil
}

// CompletePickup finishes an accepted pickup and applies the ledger
// side effects: the assigned volunteer's completed counter and the
// requester's per-category waste counter. The status transition is the
// source of truth; a failed counter or audit write is logged, never
// rolled back.
func (s *WasteZeroStore) CompletePickup(actor *schema.Account, pickupID string) (*schema.Pickup, error) {
	pickup, err := s.mongo.CompletePickup(pickupID, actor.ID.String(), actor.Role == schema.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if pickup.VolunteerID != nil {
		if err := s.mongo.IncrementCompletedCount(*pickup.VolunteerID); err != nil {
			logPartialFailure("volunteer completed counter", pickupID, err)
		}
	}

	if err := s.mongo.IncrementWasteStat(pickup.RequesterID, pickup.WasteType.StatField()); err != nil {
		logPartialFailure("requester waste counter", pickupID, err)
	}

	s.recordAudit(schema.AuditPickupCompleted, actor.ID.String(), "",
		fmt.Sprintf("pickup %q marked completed", pickup.Title))

	s.attachPickupDigests(pickup)
	return pickup, nil
}

// CancelPickup cancels an open or accepted pickup. Requesters may only
// cancel their own; admins may cancel any. Volunteers never reach this
// method: the API rejects them before any storage access.
func (s *WasteZeroStore) CancelPickup(actor *schema.Account, pickupID string) error {
	var requesterID string
	switch actor.Role {
	case schema.RoleRequester:
		requesterID = actor.ID.String()
	case schema.RoleAdmin:
	case schema.RoleVolunteer:
		return ErrUnknownRole
	default:
		return ErrUnknownRole
	}

	pickup, err := s.mongo.CancelPickup(pickupID, requesterID)
	if err != nil {
		return err
	}

	s.recordAudit(schema.AuditPickupCancelled, actor.ID.String(), "",
		fmt.Sprintf("pickup %q cancelled", pickup.Title))

	return nil
}

// DeletePickup removes a pickup entirely. Admin only; the caller
// enforces the role, this method records who did it.
func (s *WasteZeroStore) DeletePickup(admin *schema.Account, pickupID string) error {
	pickup, err := s.mongo.RemovePickup(pickupID)
	if err != nil {
		return err
	}

	s.recordAudit(schema.AuditPickupDeleted, admin.ID.String(), "",
		fmt.Sprintf("pickup %q deleted by admin", pickup.Title))

	return nil
}

func (s *WasteZeroStore) attachPickupSliceDigests(pickups []schema.Pickup) {
	refs := make([]*schema.Pickup, len(pickups))
	for i := range pickups {
		refs[i] = &pickups[i]
	}
	s.attachPickupDigests(refs...)
}
