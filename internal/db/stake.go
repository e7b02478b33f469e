package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/types"
)

// CreateStake moves the principal from the liquid HVT balance into the
// staked balance and records the stake, all in one transaction.
func (db *Database) CreateStake(ctx context.Context, stakeDoc *model.StakeDocument) error {
	_, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		if err := db.debitBalance(sessCtx, stakeDoc.AccountID, "hvt_balance", stakeDoc.Amount); err != nil {
			return nil, err
		}
		if err := db.creditBalance(sessCtx, stakeDoc.AccountID, "staked_balance", stakeDoc.Amount); err != nil {
			return nil, err
		}
		if _, err := db.collection(model.StakeCollection).InsertOne(sessCtx, stakeDoc); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

func (db *Database) GetStakesByAccount(ctx context.Context, accountID string) ([]model.StakeDocument, error) {
	filter := bson.M{"account_id": accountID}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := db.collection(model.StakeCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stakes []model.StakeDocument
	if err := cursor.All(ctx, &stakes); err != nil {
		return nil, err
	}

	return stakes, nil
}

// FindAccruableStakes returns active stakes whose last accrual is at least
// one full day old, capped at limit.
func (db *Database) FindAccruableStakes(ctx context.Context, now time.Time, limit int64) ([]model.StakeDocument, error) {
	filter := bson.M{
		"status":          types.StakeActive.String(),
		"last_accrued_at": bson.M{"$lte": now.Add(-24 * time.Hour)},
	}
	opts := options.Find().SetLimit(limit)

	cursor, err := db.collection(model.StakeCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stakes []model.StakeDocument
	if err := cursor.All(ctx, &stakes); err != nil {
		return nil, err
	}

	return stakes, nil
}

// AccrueStakeReward credits days * daily reward and advances the accrual
// cursor. The compare-and-set on last_accrued_at makes a concurrent or
// repeated accrual of the same period a no-op NotFoundError instead of a
// double credit.
func (db *Database) AccrueStakeReward(
	ctx context.Context,
	stakeID primitive.ObjectID,
	lastAccruedAt time.Time,
	days int64,
) error {
	if days <= 0 {
		return nil
	}

	_, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		filter := bson.M{
			"_id":             stakeID,
			"status":          types.StakeActive.String(),
			"last_accrued_at": lastAccruedAt,
		}
		update := bson.M{
			"$set": bson.M{"last_accrued_at": lastAccruedAt.Add(time.Duration(days) * 24 * time.Hour)},
		}

		res := db.collection(model.StakeCollection).FindOneAndUpdate(sessCtx, filter, update)
		if res.Err() != nil {
			if errors.Is(res.Err(), mongo.ErrNoDocuments) {
				return nil, &NotFoundError{
					Key:     stakeID.Hex(),
					Message: "stake not found or already accrued for this period",
				}
			}
			return nil, res.Err()
		}

		var stakeDoc model.StakeDocument
		if err := res.Decode(&stakeDoc); err != nil {
			return nil, err
		}

		reward := stakeDoc.DailyReward * days
		if reward > 0 {
			if err := db.creditBalance(sessCtx, stakeDoc.AccountID, "hvt_balance", reward); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})

	return err
}

// FindReleasableStakes returns active stakes whose lock has elapsed.
func (db *Database) FindReleasableStakes(ctx context.Context, now time.Time, limit int64) ([]model.StakeDocument, error) {
	filter := bson.M{
		"status":    types.StakeActive.String(),
		"unlock_at": bson.M{"$lte": now},
	}
	opts := options.Find().SetLimit(limit)

	cursor, err := db.collection(model.StakeCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stakes []model.StakeDocument
	if err := cursor.All(ctx, &stakes); err != nil {
		return nil, err
	}

	return stakes, nil
}

// ReleaseStake returns the principal to the liquid balance. The qualified
// ACTIVE->RELEASED transition guards against a double release.
func (db *Database) ReleaseStake(ctx context.Context, stakeID primitive.ObjectID) error {
	_, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		qualifiedStrs := make([]string, 0, len(types.QualifiedStatesForStakeRelease()))
		for _, state := range types.QualifiedStatesForStakeRelease() {
			qualifiedStrs = append(qualifiedStrs, state.String())
		}

		filter := bson.M{
			"_id":    stakeID,
			"status": bson.M{"$in": qualifiedStrs},
		}
		update := bson.M{"$set": bson.M{"status": types.StakeReleased.String()}}

		res := db.collection(model.StakeCollection).FindOneAndUpdate(sessCtx, filter, update)
		if res.Err() != nil {
			if errors.Is(res.Err(), mongo.ErrNoDocuments) {
				return nil, &NotFoundError{
					Key:     stakeID.Hex(),
					Message: "stake not found or already released",
				}
			}
			return nil, res.Err()
		}

		var stakeDoc model.StakeDocument
		if err := res.Decode(&stakeDoc); err != nil {
			return nil, err
		}

		if err := db.debitBalance(sessCtx, stakeDoc.AccountID, "staked_balance", stakeDoc.Amount); err != nil {
			return nil, err
		}
		if err := db.creditBalance(sessCtx, stakeDoc.AccountID, "hvt_balance", stakeDoc.Amount); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}
