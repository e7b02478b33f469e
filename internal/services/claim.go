package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/queue"
	"github.com/hashvault-io/hashvault-core/internal/types"
)

// ClaimResult reports one settled claim.
type ClaimResult struct {
	AccountID string    `json:"account_id"`
	Amount    int64     `json:"amount"`
	Rows      int64     `json:"rows"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// Claim moves every claimable reward of the account into its liquid HVT
// balance and refreshes the activity record, all in one transaction.
// Claiming nothing is an error; claiming twice concurrently credits once.
func (s *Service) Claim(ctx context.Context, accountID string) (*ClaimResult, error) {
	if _, err := s.getOperableAccount(ctx, accountID); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	now := time.Now().UTC()

	var total, rows int64
	err := retry.Do(func() error {
		var err error
		total, rows, err = s.db.ClaimRewards(ctx, accountID, now)
		return err
	}, s.claimRetryOpts(ctx)...)
	if err != nil {
		metrics.RecordClaim(true)
		if db.IsTransientTxnError(err) {
			return nil, types.ErrTemporarilyUnavailable
		}
		return nil, fmt.Errorf("failed to claim rewards: %w", err)
	}

	if rows == 0 {
		return nil, types.ErrNoClaimableRewards
	}

	metrics.RecordClaim(false)

	if err := s.queueManager.Publish(ctx, queue.RoutingKeyRewardClaimed, queue.RewardClaimedEvent{
		AccountID: accountID,
		Amount:    total,
		Rows:      rows,
		ClaimedAt: now,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("account_id", accountID).Msg("failed to publish reward claimed event")
	}

	log.Ctx(ctx).Info().
		Str("account_id", accountID).
		Int64("amount", total).
		Int64("rows", rows).
		Msg("claimed rewards")

	return &ClaimResult{
		AccountID: accountID,
		Amount:    total,
		Rows:      rows,
		ClaimedAt: now,
	}, nil
}

// GetClaimable lists the account's unclaimed, non-expired reward rows.
func (s *Service) GetClaimable(ctx context.Context, accountID string) ([]model.UnclaimedRewardDocument, error) {
	if _, err := s.db.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	return s.db.FindClaimableRewards(ctx, accountID, time.Now().UTC())
}

func (s *Service) claimRetryOpts(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(s.cfg.Gateway.MaxRetryTimes),
		retry.Delay(s.cfg.Gateway.RetryInterval),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// Domain outcomes are final; only storage conflicts retry.
			if errors.Is(err, types.ErrInsufficientBalance) {
				return false
			}
			return db.IsTransientTxnError(err)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().Err(err).Uint("attempt", n).Msg("retrying transactional operation")
		}),
	}
}
