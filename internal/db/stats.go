package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
)

type NetworkStatsResult struct {
	TotalHashPower    int64
	CirculatingSupply int64
}

// CalculateNetworkStats computes the network-wide aggregates with a single
// pipeline pass over accounts: total hash power of eligible-for-allocation
// accounts and the circulating HVT supply (liquid plus staked balances).
func (db *Database) CalculateNetworkStats(ctx context.Context) (*NetworkStatsResult, error) {
	supplyPipeline := bson.A{
		bson.M{
			"$group": bson.M{
				"_id":    nil,
				"supply": bson.M{"$sum": bson.M{"$add": bson.A{"$hvt_balance", "$staked_balance"}}},
			},
		},
	}

	cursor, err := db.collection(model.AccountCollection).Aggregate(ctx, supplyPipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result NetworkStatsResult

	if cursor.Next(ctx) {
		var row struct {
			Supply int64 `bson:"supply"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		result.CirculatingSupply = row.Supply
	}

	powerPipeline := bson.A{
		bson.M{
			"$match": bson.M{"frozen": false, "banned": false},
		},
		bson.M{
			"$lookup": bson.M{
				"from":         model.ActivityRecordCollection,
				"localField":   "_id",
				"foreignField": "_id",
				"as":           "activity",
			},
		},
		bson.M{"$unwind": "$activity"},
		bson.M{"$match": bson.M{"activity.active": true}},
		bson.M{
			"$group": bson.M{
				"_id":   nil,
				"power": bson.M{"$sum": bson.M{"$add": bson.A{"$own_hash_power", "$referral_hash_power"}}},
			},
		},
	}

	powerCursor, err := db.collection(model.AccountCollection).Aggregate(ctx, powerPipeline)
	if err != nil {
		return nil, err
	}
	defer powerCursor.Close(ctx)

	if powerCursor.Next(ctx) {
		var row struct {
			Power int64 `bson:"power"`
		}
		if err := powerCursor.Decode(&row); err != nil {
			return nil, err
		}
		result.TotalHashPower = row.Power
	}

	return &result, nil
}
