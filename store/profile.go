package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wastezero/wastezero-api/schema"
)

var ErrProfileNotFound = fmt.Errorf("profile not found")

// ProfileOperator is the stats ledger. Counters move exclusively
// through $inc; there is no whole-document read-modify-write path.
type ProfileOperator interface {
	CreateProfile(accountID string) error
	FindProfile(accountID string) (*schema.Profile, error)
	IncrementCompletedCount(accountID string) error
	IncrementWasteStat(accountID, field string) error
}

func (m mongoDB) profileCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.ProfileCollection)
}

func (m mongoDB) CreateProfile(accountID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.profileCollection().InsertOne(ctx, schema.Profile{
		AccountID: accountID,
	})
	return err
}

func (m mongoDB) FindProfile(accountID string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var profile schema.Profile
	if err := m.profileCollection().FindOne(ctx, bson.M{"account_id": accountID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// IncrementCompletedCount bumps a volunteer's completed counter. The
// upsert keeps the ledger correct for accounts created before the
// profile collection existed.
func (m mongoDB) IncrementCompletedCount(accountID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.profileCollection().UpdateOne(ctx,
		bson.M{"account_id": accountID},
		bson.M{"$inc": bson.M{"total_pickups_completed": 1}},
		options.Update().SetUpsert(true),
	)
	return err
}

// IncrementWasteStat bumps one waste counter of a requester. The field
// comes from WasteType.StatField, which already folds unknown
// categories into "other".
func (m mongoDB) IncrementWasteStat(accountID, field string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.profileCollection().UpdateOne(ctx,
		bson.M{"account_id": accountID},
		bson.M{"$inc": bson.M{"waste_stats." + field: 1}},
		options.Update().SetUpsert(true),
	)
	return err
}
