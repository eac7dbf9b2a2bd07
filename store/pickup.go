package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wastezero/wastezero-api/schema"
)

var (
	ErrPickupNotFound       = fmt.Errorf("pickup not found")
	ErrPickupTaken          = fmt.Errorf("pickup is no longer open")
	ErrPickupNotAccepted    = fmt.Errorf("pickup must be accepted before completion")
	ErrPickupClosed         = fmt.Errorf("pickup is already completed or cancelled")
	ErrNotAssignedVolunteer = fmt.Errorf("pickup is assigned to another volunteer")
	ErrNotPickupOwner       = fmt.Errorf("pickup belongs to another requester")
)

// PickupFilter narrows pickup list and count queries. Zero values are
// ignored.
type PickupFilter struct {
	RequesterID string
	VolunteerID string
	Statuses    []schema.PickupStatus
}

func (f PickupFilter) query() bson.M {
	query := bson.M{}
	if f.RequesterID != "" {
		query["requester_id"] = f.RequesterID
	}
	if f.VolunteerID != "" {
		query["volunteer_id"] = f.VolunteerID
	}
	switch len(f.Statuses) {
	case 0:
	case 1:
		query["status"] = f.Statuses[0]
	default:
		query["status"] = bson.M{"$in": f.Statuses}
	}
	return query
}

// PickupOperator owns the pickup lifecycle at the storage layer. Every
// transition is a single conditional update guarded by the current
// status; there is no read-then-write anywhere in this interface.
type PickupOperator interface {
	InsertPickup(pickup *schema.Pickup) (*schema.Pickup, error)
	FindPickup(id string) (*schema.Pickup, error)
	FindPickups(filter PickupFilter, skip, limit int64) ([]schema.Pickup, error)
	CountPickups(filter PickupFilter) (int64, error)
	AcceptPickup(id, volunteerID string) (*schema.Pickup, error)
	CompletePickup(id, actorID string, asAdmin bool) (*schema.Pickup, error)
	CancelPickup(id, requesterID string) (*schema.Pickup, error)
	RemovePickup(id string) (*schema.Pickup, error)
	AggregateWasteByType() ([]schema.WasteTypeCount, error)
	MonthlyPickupTrend() ([]schema.MonthlyPickupCount, error)
	VolunteerPickupCounts() (map[string]schema.PickupTally, error)
}

func (m mongoDB) pickupCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.PickupCollection)
}

// InsertPickup stores a new pickup. The caller controls every field
// except status, which is always forced to Open here.
func (m mongoDB) InsertPickup(pickup *schema.Pickup) (*schema.Pickup, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	pickup.ID = primitive.NewObjectID()
	pickup.Status = schema.PickupOpen
	pickup.VolunteerID = nil
	pickup.CompletedAt = nil
	pickup.CreatedAt = now
	pickup.UpdatedAt = now

	if _, err := m.pickupCollection().InsertOne(ctx, pickup); err != nil {
		return nil, err
	}

	return pickup, nil
}

func (m mongoDB) FindPickup(id string) (*schema.Pickup, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPickupNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var pickup schema.Pickup
	if err := m.pickupCollection().FindOne(ctx, bson.M{"_id": oid}).Decode(&pickup); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPickupNotFound
		}
		return nil, err
	}

	return &pickup, nil
}

func (m mongoDB) FindPickups(filter PickupFilter, skip, limit int64) ([]schema.Pickup, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := m.pickupCollection().Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}

	pickups := make([]schema.Pickup, 0)
	if err := cursor.All(ctx, &pickups); err != nil {
		return nil, err
	}

	return pickups, nil
}

func (m mongoDB) CountPickups(filter PickupFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.pickupCollection().CountDocuments(ctx, filter.query())
}

// AcceptPickup assigns a volunteer to an open pickup with one atomic
// conditional update. When multiple volunteers race on the same
// pickup, the status guard in the filter lets exactly one update
// match; every other caller gets ErrPickupTaken. The follow-up read on
// a miss is for error classification only and never retries the
// transition.
func (m mongoDB) AcceptPickup(id, volunteerID string) (*schema.Pickup, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPickupNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var pickup schema.Pickup
	err = m.pickupCollection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "status": schema.PickupOpen},
		bson.M{"$set": bson.M{
			"status":       schema.PickupAccepted,
			"volunteer_id": volunteerID,
			"updated_at":   time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&pickup)

	if err == mongo.ErrNoDocuments {
		if err := m.pickupCollection().FindOne(ctx, bson.M{"_id": oid}).Err(); err == mongo.ErrNoDocuments {
			return nil, ErrPickupNotFound
		}
		return nil, ErrPickupTaken
	} else if err != nil {
		return nil, err
	}

	return &pickup, nil
}

// CompletePickup moves an accepted pickup to Completed. For volunteer
// actors the filter also pins volunteer_id, so a volunteer can only
// complete a pickup assigned to them; admins skip that condition.
func (m mongoDB) CompletePickup(id, actorID string, asAdmin bool) (*schema.Pickup, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPickupNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	query := bson.M{"_id": oid, "status": schema.PickupAccepted}
	if !asAdmin {
		query["volunteer_id"] = actorID
	}

	var pickup schema.Pickup
	err = m.pickupCollection().FindOneAndUpdate(ctx,
		query,
		bson.M{"$set": bson.M{
			"status":       schema.PickupCompleted,
			"completed_at": now,
			"updated_at":   now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&pickup)

	if err == mongo.ErrNoDocuments {
		var current schema.Pickup
		err := m.pickupCollection().FindOne(ctx, bson.M{"_id": oid}).Decode(&current)
		switch {
		case err == mongo.ErrNoDocuments:
			return nil, ErrPickupNotFound
		case err != nil:
			return nil, err
		case current.Status != schema.PickupAccepted:
			return nil, ErrPickupNotAccepted
		default:
			return nil, ErrNotAssignedVolunteer
		}
	} else if err != nil {
		return nil, err
	}

	return &pickup, nil
}

// CancelPickup moves an open or accepted pickup to Cancelled. A
// non-empty requesterID additionally pins ownership for plain
// requesters; admins pass an empty string. Completed and already
// cancelled pickups are never resurrected or re-cancelled.
func (m mongoDB) CancelPickup(id, requesterID string) (*schema.Pickup, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPickupNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"_id":    oid,
		"status": bson.M{"$in": []schema.PickupStatus{schema.PickupOpen, schema.PickupAccepted}},
	}
	if requesterID != "" {
		query["requester_id"] = requesterID
	}

	var pickup schema.Pickup
	err = m.pickupCollection().FindOneAndUpdate(ctx,
		query,
		bson.M{"$set": bson.M{
			"status":     schema.PickupCancelled,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&pickup)

	if err == mongo.ErrNoDocuments {
		var current schema.Pickup
		err := m.pickupCollection().FindOne(ctx, bson.M{"_id": oid}).Decode(&current)
		switch {
		case err == mongo.ErrNoDocuments:
			return nil, ErrPickupNotFound
		case err != nil:
			return nil, err
		case requesterID != "" && current.RequesterID != requesterID:
			return nil, ErrNotPickupOwner
		default:
			return nil, ErrPickupClosed
		}
	} else if err != nil {
		return nil, err
	}

	return &pickup, nil
}

// RemovePickup deletes a pickup and returns the removed document so
// the caller can audit it.
func (m mongoDB) RemovePickup(id string) (*schema.Pickup, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPickupNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var pickup schema.Pickup
	if err := m.pickupCollection().FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&pickup); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPickupNotFound
		}
		return nil, err
	}

	return &pickup, nil
}

// AggregateWasteByType groups completed pickups by waste type.
func (m mongoDB) AggregateWasteByType() ([]schema.WasteTypeCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": schema.PickupCompleted}},
		{"$group": bson.M{
			"_id":   "$waste_type",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := m.pickupCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := make([]schema.WasteTypeCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}

	return counts, nil
}

// MonthlyPickupTrend groups pickups by creation month with a
// conditional completed count, oldest month first, capped at a year.
func (m mongoDB) MonthlyPickupTrend() ([]schema.MonthlyPickupCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$created_at"},
				"month": bson.M{"$month": "$created_at"},
			},
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$status", schema.PickupCompleted}},
					1, 0,
				},
			}},
		}},
		{"$sort": bson.M{"_id.year": 1, "_id.month": 1}},
		{"$limit": 12},
		{"$project": bson.M{
			"_id":       0,
			"year":      "$_id.year",
			"month":     "$_id.month",
			"total":     1,
			"completed": 1,
		}},
	}

	cursor, err := m.pickupCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	trend := make([]schema.MonthlyPickupCount, 0)
	if err := cursor.All(ctx, &trend); err != nil {
		return nil, err
	}

	return trend, nil
}

// VolunteerPickupCounts tallies accepted and completed pickups per
// volunteer in a single aggregation.
func (m mongoDB) VolunteerPickupCounts() (map[string]schema.PickupTally, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"volunteer_id": bson.M{"$ne": nil},
			"status": bson.M{"$in": []schema.PickupStatus{
				schema.PickupAccepted, schema.PickupCompleted,
			}},
		}},
		{"$group": bson.M{
			"_id": bson.M{
				"volunteer_id": "$volunteer_id",
				"status":       "$status",
			},
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := m.pickupCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Key struct {
			VolunteerID string              `bson:"volunteer_id"`
			Status      schema.PickupStatus `bson:"status"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	tallies := make(map[string]schema.PickupTally)
	for _, row := range rows {
		tally := tallies[row.Key.VolunteerID]
		switch row.Key.Status {
		case schema.PickupAccepted:
			tally.Accepted = row.Count
		case schema.PickupCompleted:
			tally.Completed = row.Count
		}
		tallies[row.Key.VolunteerID] = tally
	}

	return tallies, nil
}
