package services

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/types"
)

// allocateBlockRewards splits the block reward over the snapshot of eligible
// miners and persists the rows in one transaction. Shares are truncated to
// micro-units; the truncation remainder stays unissued, so the rows never
// sum to more than the block reward.
func (s *Service) allocateBlockRewards(
	ctx context.Context,
	blockDoc *model.BlockDocument,
	miners []*model.AccountDocument,
) error {
	if blockDoc.TotalHashPower == 0 {
		log.Ctx(ctx).Info().
			Int64("height", blockDoc.Height).
			Msg("no active hash power, block mined without rewards")
		return nil
	}

	rewardDocs := s.computeShares(blockDoc, miners)
	if len(rewardDocs) == 0 {
		return nil
	}

	err := retry.Do(func() error {
		return s.db.SaveUnclaimedRewards(ctx, rewardDocs)
	}, s.miningRetryOpts(ctx)...)
	if err != nil {
		if db.IsDuplicateKeyError(err) {
			// A previous attempt already allocated this block in full.
			log.Ctx(ctx).Warn().
				Int64("height", blockDoc.Height).
				Msg("rewards already allocated for block, skipping")
			return nil
		}
		metrics.RecordAllocatedRewards(0, true)
		return fmt.Errorf("failed to allocate rewards for block %d: %w", blockDoc.Height, err)
	}

	metrics.RecordAllocatedRewards(len(rewardDocs), false)

	log.Ctx(ctx).Debug().
		Int64("height", blockDoc.Height).
		Int("rows", len(rewardDocs)).
		Msg("allocated block rewards")

	return nil
}

// computeShares fans the proportional-share arithmetic out over a bounded
// worker pool and drops zero shares, which occur when an account's power is
// too small a fraction of the snapshot to earn a single micro-unit.
func (s *Service) computeShares(
	blockDoc *model.BlockDocument,
	miners []*model.AccountDocument,
) []*model.UnclaimedRewardDocument {
	expiresAt := blockDoc.MinedAt.Add(s.cfg.Mining.ClaimWindow)

	shares := make([]*model.UnclaimedRewardDocument, len(miners))
	p := pool.New().WithMaxGoroutines(s.cfg.Mining.AllocationWorkers)
	for i, miner := range miners {
		p.Go(func() {
			amount := types.ProportionalShare(
				blockDoc.Reward,
				miner.TotalHashPower(),
				blockDoc.TotalHashPower,
			)
			if amount == 0 {
				return
			}
			shares[i] = model.NewUnclaimedRewardDocument(
				miner.ID, blockDoc.Height, amount, blockDoc.MinedAt, expiresAt,
			)
		})
	}
	p.Wait()

	rewardDocs := make([]*model.UnclaimedRewardDocument, 0, len(shares))
	for _, doc := range shares {
		if doc != nil {
			rewardDocs = append(rewardDocs, doc)
		}
	}

	return rewardDocs
}
