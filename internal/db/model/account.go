package model

import "time"

const AccountCollection = "accounts"

type AccountDocument struct {
	ID string `bson:"_id" json:"id"`
	// Balances in micro-units.
	UsdtBalance   int64 `bson:"usdt_balance" json:"usdt_balance"`
	HvtBalance    int64 `bson:"hvt_balance" json:"hvt_balance"`
	StakedBalance int64 `bson:"staked_balance" json:"staked_balance"`
	// Hash power in GH/s. OwnHashPower is bought, ReferralHashPower is the
	// bonus earned from referred purchases.
	OwnHashPower      int64     `bson:"own_hash_power" json:"own_hash_power"`
	ReferralHashPower int64     `bson:"referral_hash_power" json:"referral_hash_power"`
	ReferralCode      string    `bson:"referral_code" json:"referral_code"`
	ReferredBy        string    `bson:"referred_by,omitempty" json:"referred_by,omitempty"`
	Frozen            bool      `bson:"frozen" json:"frozen"`
	Banned            bool      `bson:"banned" json:"banned"`
	IsAdmin           bool      `bson:"is_admin" json:"is_admin"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// TotalHashPower is the power used for reward allocation.
func (a *AccountDocument) TotalHashPower() int64 {
	return a.OwnHashPower + a.ReferralHashPower
}

func NewAccountDocument(id, referralCode, referredBy string, createdAt time.Time) *AccountDocument {
	return &AccountDocument{
		ID:           id,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
		CreatedAt:    createdAt,
	}
}
