package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hashvault-io/hashvault-core/internal/types"
)

const StakeCollection = "stakes"

// StakeDocument locks a principal until UnlockAt and accrues a fixed daily
// reward computed from the APR at creation time.
type StakeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID string             `bson:"account_id" json:"account_id"`
	// Amount and DailyReward in micro-units of HVT.
	Amount        int64             `bson:"amount" json:"amount"`
	TermDays      int               `bson:"term_days" json:"term_days"`
	DailyReward   int64             `bson:"daily_reward" json:"daily_reward"`
	Status        types.StakeStatus `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UnlockAt      time.Time         `bson:"unlock_at" json:"unlock_at"`
	LastAccruedAt time.Time         `bson:"last_accrued_at" json:"last_accrued_at"`
}
