package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/types"
	"github.com/hashvault-io/hashvault-core/internal/utils/poller"
)

const dayDuration = 24 * time.Hour

// CreateStake locks amount HVT for one of the allowed terms. The daily
// reward is fixed from the APR at creation time; a later APR change does not
// touch existing stakes.
func (s *Service) CreateStake(ctx context.Context, accountID string, amount int64, termDays int) (*model.StakeDocument, error) {
	if amount <= 0 {
		return nil, types.ErrInvalidAmount
	}
	if !slices.Contains(s.cfg.Gateway.AllowedStakeTerms, termDays) {
		return nil, fmt.Errorf("%w: term %d days not offered", types.ErrInvalidAmount, termDays)
	}
	if _, err := s.getOperableAccount(ctx, accountID); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	now := time.Now().UTC()
	stakeDoc := &model.StakeDocument{
		AccountID:     accountID,
		Amount:        amount,
		TermDays:      termDays,
		DailyReward:   types.DailyStakeReward(amount, s.cfg.Gateway.StakingAPRDec()),
		Status:        types.StakeActive,
		CreatedAt:     now,
		UnlockAt:      now.Add(time.Duration(termDays) * dayDuration),
		LastAccruedAt: now,
	}

	err := retry.Do(func() error {
		return s.db.CreateStake(ctx, stakeDoc)
	}, s.claimRetryOpts(ctx)...)
	if err != nil {
		if db.IsTransientTxnError(err) {
			return nil, types.ErrTemporarilyUnavailable
		}
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("account_id", accountID).
		Int64("amount", amount).
		Int("term_days", termDays).
		Int64("daily_reward", stakeDoc.DailyReward).
		Msg("stake created")

	return stakeDoc, nil
}

// GetStakes lists the account's stakes, newest first.
func (s *Service) GetStakes(ctx context.Context, accountID string) ([]model.StakeDocument, error) {
	if _, err := s.db.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	return s.db.GetStakesByAccount(ctx, accountID)
}

// StartStakePoller starts the poller that pays out daily stake rewards and
// releases matured stakes.
func (s *Service) StartStakePoller(ctx context.Context) {
	stakePoller := poller.NewPoller(
		s.cfg.Gateway.StakeAccrualInterval,
		metrics.RecordPollerDuration("stake", s.processStakes),
	)
	go stakePoller.Start(ctx)
}

func (s *Service) processStakes(ctx context.Context) error {
	now := time.Now().UTC()

	if err := s.accrueStakeRewards(ctx, now); err != nil {
		return err
	}

	return s.releaseMaturedStakes(ctx, now)
}

// accrueStakeRewards credits every overdue stake its missed full days in
// parallel. Each accrual carries its own compare-and-set, so a stake picked
// up by two pollers pays out once.
func (s *Service) accrueStakeRewards(ctx context.Context, now time.Time) error {
	stakes, err := s.db.FindAccruableStakes(ctx, now, s.cfg.Gateway.StakeBatchLimit)
	if err != nil {
		return fmt.Errorf("failed to find accruable stakes: %w", err)
	}
	if len(stakes) == 0 {
		return nil
	}

	p := pool.New().WithMaxGoroutines(s.cfg.Gateway.StakeWorkers).WithErrors()
	for _, stake := range stakes {
		p.Go(func() error {
			days := accruableDays(&stake, now)
			if days == 0 {
				return nil
			}

			err := s.db.AccrueStakeReward(ctx, stake.ID, stake.LastAccruedAt, days)
			if err != nil {
				if db.IsNotFoundError(err) {
					// Another poller accrued this period first.
					return nil
				}
				return fmt.Errorf("failed to accrue stake %s: %w", stake.ID.Hex(), err)
			}

			log.Ctx(ctx).Debug().
				Str("stake_id", stake.ID.Hex()).
				Str("account_id", stake.AccountID).
				Int64("days", days).
				Msg("accrued stake reward")
			return nil
		})
	}

	return p.Wait()
}

func (s *Service) releaseMaturedStakes(ctx context.Context, now time.Time) error {
	stakes, err := s.db.FindReleasableStakes(ctx, now, s.cfg.Gateway.StakeBatchLimit)
	if err != nil {
		return fmt.Errorf("failed to find releasable stakes: %w", err)
	}

	for _, stake := range stakes {
		if err := s.db.ReleaseStake(ctx, stake.ID); err != nil {
			if db.IsNotFoundError(err) {
				continue
			}
			return fmt.Errorf("failed to release stake %s: %w", stake.ID.Hex(), err)
		}

		log.Ctx(ctx).Info().
			Str("stake_id", stake.ID.Hex()).
			Str("account_id", stake.AccountID).
			Int64("amount", stake.Amount).
			Msg("released matured stake")
	}

	return nil
}

// accruableDays counts the whole days owed to a stake, clipped at the unlock
// time so a stake never earns past its term.
func accruableDays(stake *model.StakeDocument, now time.Time) int64 {
	until := now
	if stake.UnlockAt.Before(until) {
		until = stake.UnlockAt
	}

	elapsed := until.Sub(stake.LastAccruedAt)
	if elapsed <= 0 {
		return 0
	}

	return int64(elapsed / dayDuration)
}
