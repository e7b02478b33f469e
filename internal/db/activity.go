package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
)

func (db *Database) GetActivityRecord(ctx context.Context, accountID string) (*model.ActivityRecordDocument, error) {
	res := db.collection(model.ActivityRecordCollection).FindOne(ctx, bson.M{"_id": accountID})

	var activityDoc model.ActivityRecordDocument
	if err := res.Decode(&activityDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     accountID,
				Message: "activity record not found",
			}
		}
		return nil, err
	}

	return &activityDoc, nil
}

// ensureActivityRecord creates an Active activity record on the first
// hash-power purchase. Existing records are left untouched: an account
// swept inactive returns to mining only through a claim. Runs inside the
// purchase transaction.
func (db *Database) ensureActivityRecord(ctx context.Context, accountID string, now time.Time) error {
	filter := bson.M{"_id": accountID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"active":        true,
			"last_claim_at": now,
			"total_claims":  0,
			"missed_claims": 0,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.ActivityRecordCollection).UpdateOne(ctx, filter, update, opts)

	return err
}

// recordClaim flips the account active, stamps the claim time and bumps the
// claim counter. Runs inside the claim transaction.
func (db *Database) recordClaim(ctx context.Context, accountID string, now time.Time) error {
	filter := bson.M{"_id": accountID}
	update := bson.M{
		"$set": bson.M{
			"active":        true,
			"last_claim_at": now,
		},
		"$inc": bson.M{"total_claims": 1},
		"$setOnInsert": bson.M{
			"missed_claims": 0,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.ActivityRecordCollection).UpdateOne(ctx, filter, update, opts)

	return err
}

// MarkInactiveSince flags every active account whose last claim predates the
// cutoff. Returns the number of accounts flagged.
func (db *Database) MarkInactiveSince(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"active":        true,
		"last_claim_at": bson.M{"$lt": cutoff},
	}
	update := bson.M{"$set": bson.M{"active": false}}

	res, err := db.collection(model.ActivityRecordCollection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}

	return res.ModifiedCount, nil
}

// IncrementMissedClaims bumps the missed-claim counter for the given
// accounts; used when a reward window closes with the reward unclaimed.
func (db *Database) IncrementMissedClaims(ctx context.Context, accountIDs []string) error {
	if len(accountIDs) == 0 {
		return nil
	}

	filter := bson.M{"_id": bson.M{"$in": accountIDs}}
	update := bson.M{"$inc": bson.M{"missed_claims": 1}}

	_, err := db.collection(model.ActivityRecordCollection).UpdateMany(ctx, filter, update)

	return err
}
