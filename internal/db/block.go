package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
)

func (db *Database) InsertBlock(ctx context.Context, blockDoc *model.BlockDocument) error {
	_, err := db.collection(model.BlockCollection).InsertOne(ctx, blockDoc)
	if err != nil {
		return asDuplicateKeyError(
			err,
			fmt.Sprintf("%d", blockDoc.Height),
			"block height already mined",
		)
	}

	return nil
}

// GetLatestBlock returns the highest block, or a NotFoundError before the
// first block is mined.
func (db *Database) GetLatestBlock(ctx context.Context) (*model.BlockDocument, error) {
	opts := options.FindOne().SetSort(bson.M{"_id": -1})

	res := db.collection(model.BlockCollection).FindOne(ctx, bson.M{}, opts)

	var blockDoc model.BlockDocument
	if err := res.Decode(&blockDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     "latest",
				Message: "no blocks mined yet",
			}
		}
		return nil, err
	}

	return &blockDoc, nil
}

func (db *Database) GetBlock(ctx context.Context, height int64) (*model.BlockDocument, error) {
	res := db.collection(model.BlockCollection).FindOne(ctx, bson.M{"_id": height})

	var blockDoc model.BlockDocument
	if err := res.Decode(&blockDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", height),
				Message: "block not found",
			}
		}
		return nil, err
	}

	return &blockDoc, nil
}
