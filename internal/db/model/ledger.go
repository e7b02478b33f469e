package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hashvault-io/hashvault-core/internal/types"
)

const LedgerEntryCollection = "ledger_entries"

// LedgerEntryDocument records every balance-affecting request. Status is
// one-directional: PENDING -> APPROVED|REJECTED, or PENDING -> COMPLETED.
type LedgerEntryDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EntryID string             `bson:"entry_id" json:"entry_id"`
	Type    types.EntryType    `bson:"type" json:"type"`
	// AccountID is the debited side for withdrawals/transfers and the
	// credited side for deposits.
	AccountID      string `bson:"account_id" json:"account_id"`
	CounterpartyID string `bson:"counterparty_id,omitempty" json:"counterparty_id,omitempty"`
	// Amount and Fee in micro-units of Currency.
	Amount   int64             `bson:"amount" json:"amount"`
	Fee      int64             `bson:"fee" json:"fee"`
	Currency types.Currency    `bson:"currency" json:"currency"`
	Status   types.EntryStatus `bson:"status" json:"status"`
	TxHash   string            `bson:"tx_hash,omitempty" json:"tx_hash,omitempty"`
	Address  string            `bson:"address,omitempty" json:"address,omitempty"`
	Network  string            `bson:"network,omitempty" json:"network,omitempty"`
	Memo     string            `bson:"memo,omitempty" json:"memo,omitempty"`
	// Reason is set on rejection.
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
