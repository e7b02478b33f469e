package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/types"
)

func (db *Database) CreateAccount(ctx context.Context, accountDoc *model.AccountDocument) error {
	_, err := db.collection(model.AccountCollection).InsertOne(ctx, accountDoc)
	if err != nil {
		return asDuplicateKeyError(err, accountDoc.ID, "account already exists")
	}

	return nil
}

func (db *Database) GetAccount(ctx context.Context, accountID string) (*model.AccountDocument, error) {
	filter := bson.M{"_id": accountID}

	res := db.collection(model.AccountCollection).FindOne(ctx, filter)

	var accountDoc model.AccountDocument
	if err := res.Decode(&accountDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     accountID,
				Message: "account not found",
			}
		}
		return nil, err
	}

	return &accountDoc, nil
}

func (db *Database) GetAccountByReferralCode(ctx context.Context, code string) (*model.AccountDocument, error) {
	res := db.collection(model.AccountCollection).FindOne(ctx, bson.M{"referral_code": code})

	var accountDoc model.AccountDocument
	if err := res.Decode(&accountDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     code,
				Message: "no account with referral code",
			}
		}
		return nil, err
	}

	return &accountDoc, nil
}

// balanceField maps a currency to its liquid balance field.
func balanceField(currency types.Currency) string {
	if currency == types.CurrencyHVT {
		return "hvt_balance"
	}

	return "usdt_balance"
}

// creditBalance unconditionally increments a balance field. Callers invoke
// it inside a session transaction when the credit pairs with other writes.
func (db *Database) creditBalance(ctx context.Context, accountID string, field string, amount int64) error {
	res, err := db.collection(model.AccountCollection).UpdateOne(
		ctx,
		bson.M{"_id": accountID},
		bson.M{"$inc": bson.M{field: amount}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Key: accountID, Message: "account not found when crediting balance"}
	}

	return nil
}

// debitBalance decrements a balance field only when the current value covers
// the amount. The conditional filter is what makes concurrent debits against
// the same account safe: the losing request matches nothing.
func (db *Database) debitBalance(ctx context.Context, accountID string, field string, amount int64) error {
	filter := bson.M{
		"_id": accountID,
		field: bson.M{"$gte": amount},
	}

	res, err := db.collection(model.AccountCollection).UpdateOne(
		ctx, filter, bson.M{"$inc": bson.M{field: -amount}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing account from an underfunded one.
		if _, err := db.GetAccount(ctx, accountID); err != nil {
			return err
		}
		return types.ErrInsufficientBalance
	}

	return nil
}

// PurchaseHashPower atomically debits the buyer's USDT balance by cost,
// credits the purchased power, and grants bonus power to the referrer (when
// referrerID is non-empty) inside one transaction. The first purchase also
// creates the buyer's activity record, making the account an eligible
// miner. Returns types.ErrInsufficientBalance when the buyer cannot cover
// the cost.
func (db *Database) PurchaseHashPower(ctx context.Context, accountID string, cost, power int64, referrerID string, referralBonus int64, now time.Time) error {
	_, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		if err := db.debitBalance(sessCtx, accountID, "usdt_balance", cost); err != nil {
			return nil, err
		}

		res, err := db.collection(model.AccountCollection).UpdateOne(
			sessCtx,
			bson.M{"_id": accountID},
			bson.M{"$inc": bson.M{"own_hash_power": power}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, &NotFoundError{Key: accountID, Message: "account not found when adding hash power"}
		}

		if referrerID != "" && referralBonus > 0 {
			if _, err := db.collection(model.AccountCollection).UpdateOne(
				sessCtx,
				bson.M{"_id": referrerID},
				bson.M{"$inc": bson.M{"referral_hash_power": referralBonus}},
			); err != nil {
				return nil, fmt.Errorf("failed to credit referral hash power: %w", err)
			}
		}

		if err := db.ensureActivityRecord(sessCtx, accountID, now); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

// GetEligibleMiners returns the accounts the allocator may credit: active
// per their activity record, nonzero hash power, not frozen or banned.
func (db *Database) GetEligibleMiners(ctx context.Context) ([]*model.AccountDocument, error) {
	pipeline := bson.A{
		bson.M{
			"$match": bson.M{
				"frozen": false,
				"banned": false,
				"$expr": bson.M{
					"$gt": bson.A{
						bson.M{"$add": bson.A{"$own_hash_power", "$referral_hash_power"}},
						0,
					},
				},
			},
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
	}

	cursor, err := db.collection(model.AccountCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var miners []*model.AccountDocument
	if err := cursor.All(ctx, &miners); err != nil {
		return nil, err
	}

	return miners, nil
}
