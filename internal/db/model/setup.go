package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hashvault-io/hashvault-core/internal/config"
)

const setupTimeout = 30 * time.Second

// Setup creates the collections and indexes the core relies on. It is
// idempotent; index creation on an existing index is a no-op.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	clientOps := options.Client().ApplyURI(cfg.Address)
	if cfg.Username != "" {
		clientOps = clientOps.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	database := client.Database(cfg.DbName)

	collections := []string{
		AccountCollection,
		BlockCollection,
		UnclaimedRewardCollection,
		ActivityRecordCollection,
		LedgerEntryCollection,
		StakeCollection,
	}
	for _, name := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
	}

	indexes := map[string][]mongo.IndexModel{
		AccountCollection: {
			{
				Keys:    bson.D{{Key: "referral_code", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		UnclaimedRewardCollection: {
			// Duplicate-credit backstop: one reward row per account per block.
			{
				Keys: bson.D{
					{Key: "account_id", Value: 1},
					{Key: "block_height", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "account_id", Value: 1},
					{Key: "claimed", Value: 1},
					{Key: "expires_at", Value: 1},
				},
			},
		},
		LedgerEntryCollection: {
			{
				Keys:    bson.D{{Key: "entry_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			// Deposit tx hashes are globally unique. Partial so that
			// entries without a tx hash are not constrained.
			{
				Keys: bson.D{{Key: "tx_hash", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"tx_hash": bson.M{"$exists": true}}),
			},
			{
				Keys: bson.D{
					{Key: "account_id", Value: 1},
					{Key: "type", Value: 1},
					{Key: "status", Value: 1},
					{Key: "updated_at", Value: -1},
				},
			},
		},
		StakeCollection: {
			{
				Keys: bson.D{
					{Key: "account_id", Value: 1},
					{Key: "status", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "status", Value: 1},
					{Key: "last_accrued_at", Value: 1},
				},
			},
		},
		ActivityRecordCollection: {
			{
				Keys: bson.D{
					{Key: "active", Value: 1},
					{Key: "last_claim_at", Value: 1},
				},
			},
		},
	}

	for collection, models := range indexes {
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		log.Debug().Str("collection", collection).Msg("indexes created")
	}

	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	err := database.CreateCollection(ctx, name)
	if err != nil {
		var cmdErr mongo.CommandError
		// NamespaceExists
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}

	return nil
}
