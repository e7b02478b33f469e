package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UnclaimedRewardCollection = "unclaimed_rewards"

// UnclaimedRewardDocument transitions unclaimed->claimed exactly once, or
// becomes inert when ExpiresAt passes. The unique (account_id, block_height)
// index is the backstop against duplicate credits from allocator retries.
type UnclaimedRewardDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AccountID   string             `bson:"account_id" json:"account_id"`
	BlockHeight int64              `bson:"block_height" json:"block_height"`
	// Amount in micro-units of HVT.
	Amount    int64      `bson:"amount" json:"amount"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time  `bson:"expires_at" json:"expires_at"`
	Claimed   bool       `bson:"claimed" json:"claimed"`
	ClaimedAt *time.Time `bson:"claimed_at,omitempty" json:"claimed_at,omitempty"`
}

func NewUnclaimedRewardDocument(
	accountID string, blockHeight, amount int64, createdAt, expiresAt time.Time,
) *UnclaimedRewardDocument {
	return &UnclaimedRewardDocument{
		AccountID:   accountID,
		BlockHeight: blockHeight,
		Amount:      amount,
		CreatedAt:   createdAt,
		ExpiresAt:   expiresAt,
	}
}
