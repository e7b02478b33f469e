package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/queue"
	"github.com/hashvault-io/hashvault-core/internal/utils/poller"
)

const genesisHeight = int64(1)

// StartBlockScheduler starts the mining loop. The poller runs ticks
// sequentially, so allocation for a block always finishes before the next
// block is mined.
func (s *Service) StartBlockScheduler(ctx context.Context) {
	blockPoller := poller.NewPoller(
		s.cfg.Mining.BlockInterval,
		metrics.RecordPollerDuration("block_scheduler", s.MineBlockTick),
	)
	go blockPoller.Start(ctx)
}

// MineBlockTick mines exactly one block: it snapshots the eligible miners,
// inserts the block at the next height and allocates the reward
// proportionally to the snapshot. Losing the height race to a concurrent
// scheduler is not an error; the tick simply yields.
func (s *Service) MineBlockTick(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Mining.TickTimeout)
	defer cancel()

	now := time.Now().UTC()

	height := genesisHeight
	latestBlock, err := s.db.GetLatestBlock(ctx)
	if err != nil && !db.IsNotFoundError(err) {
		return fmt.Errorf("failed to get latest block: %w", err)
	}
	if err == nil {
		height = latestBlock.Height + 1
	}

	// The snapshot is taken before the block is inserted. Power bought
	// after this point counts from the next block on.
	miners, err := s.db.GetEligibleMiners(ctx)
	if err != nil {
		return fmt.Errorf("failed to snapshot eligible miners: %w", err)
	}

	var totalHashPower int64
	for _, miner := range miners {
		totalHashPower += miner.TotalHashPower()
	}

	blockDoc := model.NewBlockDocument(height, s.cfg.Mining.BlockReward, totalHashPower, now)
	if err := s.db.InsertBlock(ctx, blockDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			log.Ctx(ctx).Warn().
				Int64("height", height).
				Msg("block height already mined by a concurrent scheduler, yielding")
			return nil
		}
		return fmt.Errorf("failed to insert block %d: %w", height, err)
	}

	metrics.RecordBlockHeight(height)

	if err := s.allocateBlockRewards(ctx, blockDoc, miners); err != nil {
		return err
	}

	if err := s.queueManager.Publish(ctx, queue.RoutingKeyBlockMined, queue.BlockMinedEvent{
		Height:         blockDoc.Height,
		Reward:         blockDoc.Reward,
		TotalHashPower: blockDoc.TotalHashPower,
		Participants:   len(miners),
		MinedAt:        blockDoc.MinedAt,
	}); err != nil {
		// The block is already committed; the event is best-effort.
		log.Ctx(ctx).Error().Err(err).Int64("height", height).Msg("failed to publish block mined event")
	}

	log.Ctx(ctx).Info().
		Int64("height", height).
		Int64("total_hash_power", totalHashPower).
		Int("participants", len(miners)).
		Msg("mined block")

	return nil
}

// retryOpts is the shared retry policy for transient storage conflicts
// inside a mining tick.
// GetBlock returns a single mined block by height.
func (s *Service) GetBlock(ctx context.Context, height int64) (*model.BlockDocument, error) {
	return s.db.GetBlock(ctx, height)
}

func (s *Service) miningRetryOpts(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(s.cfg.Mining.MaxRetryTimes),
		retry.Delay(s.cfg.Mining.RetryInterval),
		retry.LastErrorOnly(true),
		retry.RetryIf(db.IsTransientTxnError),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().Err(err).Uint("attempt", n).Msg("retrying reward allocation")
		}),
	}
}
