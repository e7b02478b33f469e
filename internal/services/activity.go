package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/utils/poller"
)

// StartInactivitySweeper starts the poller that expels idle accounts from
// reward allocation and books their expired rewards as missed claims.
func (s *Service) StartInactivitySweeper(ctx context.Context) {
	sweepPoller := poller.NewPoller(
		s.cfg.Mining.SweepInterval,
		metrics.RecordPollerDuration("inactivity_sweep", s.sweepInactivity),
	)
	go sweepPoller.Start(ctx)
}

// IsEligible reports whether the account currently qualifies for reward
// allocation: an active activity record, nonzero hash power, not frozen or
// banned. An account with no activity record has never mined and is not
// eligible.
func (s *Service) IsEligible(ctx context.Context, accountID string) (bool, error) {
	accountDoc, err := s.db.GetAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	if accountDoc.Frozen || accountDoc.Banned || accountDoc.TotalHashPower() == 0 {
		return false, nil
	}

	activityDoc, err := s.db.GetActivityRecord(ctx, accountID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	return activityDoc.Active, nil
}

func (s *Service) sweepInactivity(ctx context.Context) error {
	now := time.Now().UTC()
	cutoff := now.Add(-s.cfg.Mining.InactivityWindow)

	swept, err := s.db.MarkInactiveSince(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to mark inactive accounts: %w", err)
	}
	metrics.RecordInactiveSweep(swept)

	if swept > 0 {
		log.Ctx(ctx).Info().
			Int64("count", swept).
			Time("cutoff", cutoff).
			Msg("marked accounts inactive")
	}

	// Rewards that expired since the previous sweep count as missed claims
	// on the owning account's activity record.
	since := now.Add(-s.cfg.Mining.SweepInterval)
	expired, err := s.db.GetAccountsWithExpiredRewards(ctx, since, now)
	if err != nil {
		return fmt.Errorf("failed to find expired rewards: %w", err)
	}
	if len(expired) == 0 {
		return nil
	}

	if err := s.db.IncrementMissedClaims(ctx, expired); err != nil {
		return fmt.Errorf("failed to record missed claims: %w", err)
	}

	log.Ctx(ctx).Debug().
		Int("accounts", len(expired)).
		Msg("recorded missed claims for expired rewards")

	return nil
}
