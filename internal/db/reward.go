package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
)

// SaveUnclaimedRewards inserts a block's reward rows inside one transaction:
// claimers never observe a partially allocated block. A duplicate on the
// (account_id, block_height) index aborts the whole batch and surfaces as a
// DuplicateKeyError, meaning the block was already allocated.
func (db *Database) SaveUnclaimedRewards(ctx context.Context, rewardDocs []*model.UnclaimedRewardDocument) error {
	if len(rewardDocs) == 0 {
		return nil
	}

	docs := make([]any, len(rewardDocs))
	for i, rewardDoc := range rewardDocs {
		docs[i] = rewardDoc
	}

	_, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		if _, err := db.collection(model.UnclaimedRewardCollection).InsertMany(sessCtx, docs); err != nil {
			return nil, asDuplicateKeyError(
				err,
				fmt.Sprintf("block %d", rewardDocs[0].BlockHeight),
				"rewards already allocated for this block",
			)
		}
		return nil, nil
	})

	return err
}

// FindClaimableRewards returns the unclaimed, non-expired rewards of an
// account, newest first. Expired rows are excluded at read time; their value
// is forfeited.
func (db *Database) FindClaimableRewards(
	ctx context.Context, accountID string, now time.Time,
) ([]model.UnclaimedRewardDocument, error) {
	filter := bson.M{
		"account_id": accountID,
		"claimed":    false,
		"expires_at": bson.M{"$gt": now},
	}
	opts := options.Find().SetSort(bson.M{"block_height": -1})

	cursor, err := db.collection(model.UnclaimedRewardCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rewards []model.UnclaimedRewardDocument
	if err := cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}

	return rewards, nil
}

// ClaimRewards marks every claimable reward row of the account claimed and
// credits their sum to the permanent HVT balance, all inside one
// transaction. The expiry comparison and the claimed-flag flip happen
// against the same snapshot, so a row can never be claimed past its expiry
// even under contention. Returns the credited amount and the number of rows
// claimed; (0, 0) means nothing was claimable.
func (db *Database) ClaimRewards(ctx context.Context, accountID string, now time.Time) (int64, int64, error) {
	type claimResult struct {
		total int64
		rows  int64
	}

	res, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		filter := bson.M{
			"account_id": accountID,
			"claimed":    false,
			"expires_at": bson.M{"$gt": now},
		}

		cursor, err := db.collection(model.UnclaimedRewardCollection).Find(sessCtx, filter)
		if err != nil {
			return nil, err
		}

		var rewards []model.UnclaimedRewardDocument
		if err := cursor.All(sessCtx, &rewards); err != nil {
			return nil, err
		}
		if len(rewards) == 0 {
			return claimResult{}, nil
		}

		var total int64
		for _, reward := range rewards {
			total += reward.Amount
		}

		update := bson.M{
			"$set": bson.M{
				"claimed":    true,
				"claimed_at": now,
			},
		}
		updateRes, err := db.collection(model.UnclaimedRewardCollection).UpdateMany(sessCtx, filter, update)
		if err != nil {
			return nil, err
		}
		if updateRes.ModifiedCount != int64(len(rewards)) {
			return nil, fmt.Errorf(
				"claim row count mismatch: read %d, claimed %d", len(rewards), updateRes.ModifiedCount,
			)
		}

		if err := db.creditBalance(sessCtx, accountID, "hvt_balance", total); err != nil {
			return nil, err
		}

		if err := db.recordClaim(sessCtx, accountID, now); err != nil {
			return nil, err
		}

		return claimResult{total: total, rows: int64(len(rewards))}, nil
	})
	if err != nil {
		return 0, 0, err
	}

	result := res.(claimResult)

	return result.total, result.rows, nil
}

// GetAccountsWithExpiredRewards returns the ids of accounts holding at least
// one reward that expired unclaimed inside (since, until]. Used by the
// inactivity sweep to bump missed-claim counters.
func (db *Database) GetAccountsWithExpiredRewards(
	ctx context.Context, since, until time.Time,
) ([]string, error) {
	pipeline := bson.A{
		bson.M{
			"$match": bson.M{
				"claimed": false,
				"expires_at": bson.M{
					"$gt":  since,
					"$lte": until,
				},
			},
		},
		bson.M{
			"$group": bson.M{"_id": "$account_id"},
		},
	}

	cursor, err := db.collection(model.UnclaimedRewardCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var grouped []struct {
		AccountID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &grouped); err != nil {
		return nil, err
	}

	accountIDs := make([]string, len(grouped))
	for i, g := range grouped {
		accountIDs[i] = g.AccountID
	}

	return accountIDs, nil
}
