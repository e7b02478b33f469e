package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/types"
	"github.com/hashvault-io/hashvault-core/pkg"
)

const referralCodeLength = 8

// BalanceDetails is the full balance view of one account. All amounts are
// micro-units.
type BalanceDetails struct {
	AccountID        string `json:"account_id"`
	UsdtBalance      int64  `json:"usdt_balance"`
	HvtBalance       int64  `json:"hvt_balance"`
	StakedBalance    int64  `json:"staked_balance"`
	UnclaimedRewards int64  `json:"unclaimed_rewards"`
	TotalHashPower   int64  `json:"total_hash_power"`
}

// RegisterAccount creates an account with a fresh referral code. When
// referralCode names an existing account, the new account is linked to it
// and referred purchases grant that account bonus power.
func (s *Service) RegisterAccount(ctx context.Context, accountID, referralCode string) (*model.AccountDocument, error) {
	var referredBy string
	if referralCode != "" {
		referrer, err := s.db.GetAccountByReferralCode(ctx, referralCode)
		if err != nil {
			if !db.IsNotFoundError(err) {
				return nil, fmt.Errorf("failed to look up referral code: %w", err)
			}
			// An unknown code does not block registration.
			log.Ctx(ctx).Debug().Str("referral_code", referralCode).Msg("unknown referral code ignored")
		} else {
			referredBy = referrer.ID
		}
	}

	accountDoc := model.NewAccountDocument(
		accountID,
		pkg.RandReferralCode(referralCodeLength),
		referredBy,
		time.Now().UTC(),
	)
	if err := s.db.CreateAccount(ctx, accountDoc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("account_id", accountID).
		Str("referred_by", referredBy).
		Msg("registered account")

	return accountDoc, nil
}

// GetBalance returns the account's balances plus the sum of its currently
// claimable rewards.
func (s *Service) GetBalance(ctx context.Context, accountID string) (*BalanceDetails, error) {
	accountDoc, err := s.db.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	rewards, err := s.db.FindClaimableRewards(ctx, accountID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to find claimable rewards: %w", err)
	}
	var unclaimed int64
	for _, reward := range rewards {
		unclaimed += reward.Amount
	}

	return &BalanceDetails{
		AccountID:        accountDoc.ID,
		UsdtBalance:      accountDoc.UsdtBalance,
		HvtBalance:       accountDoc.HvtBalance,
		StakedBalance:    accountDoc.StakedBalance,
		UnclaimedRewards: unclaimed,
		TotalHashPower:   accountDoc.TotalHashPower(),
	}, nil
}

// getOperableAccount loads an account and rejects frozen or banned ones.
// Every mutating operation goes through it.
func (s *Service) getOperableAccount(ctx context.Context, accountID string) (*model.AccountDocument, error) {
	accountDoc, err := s.db.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if accountDoc.Banned {
		return nil, types.ErrAccountBanned
	}
	if accountDoc.Frozen {
		return nil, types.ErrAccountFrozen
	}

	return accountDoc, nil
}
