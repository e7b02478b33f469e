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

// GlobalStats is the public network snapshot. Amounts are micro-units.
type GlobalStats struct {
	BlockHeight       int64     `json:"block_height"`
	LastBlockAt       time.Time `json:"last_block_at"`
	BlockReward       int64     `json:"block_reward"`
	TotalHashPower    int64     `json:"total_hash_power"`
	CirculatingSupply int64     `json:"circulating_supply"`
	MaxSupply         int64     `json:"max_supply"`
	TransferLocked    bool      `json:"transfer_locked"`
}

// GetGlobalStats aggregates the network view served on the public stats
// endpoint.
func (s *Service) GetGlobalStats(ctx context.Context) (*GlobalStats, error) {
	stats, err := s.db.CalculateNetworkStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate network stats: %w", err)
	}

	result := &GlobalStats{
		BlockReward:       s.cfg.Mining.BlockReward,
		TotalHashPower:    stats.TotalHashPower,
		CirculatingSupply: stats.CirculatingSupply,
		MaxSupply:         s.cfg.Gateway.MaxSupply,
	}

	threshold := s.cfg.Gateway.TransferLockThresholdDec().
		MulInt64(s.cfg.Gateway.MaxSupply).
		TruncateInt64()
	result.TransferLocked = stats.CirculatingSupply >= threshold

	latestBlock, err := s.db.GetLatestBlock(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to get latest block: %w", err)
		}
		// No block mined yet; height stays zero.
		return result, nil
	}
	result.BlockHeight = latestBlock.Height
	result.LastBlockAt = latestBlock.MinedAt

	return result, nil
}

// StartStatsPoller starts the poller exporting network gauges.
func (s *Service) StartStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		s.cfg.Mining.SweepInterval,
		metrics.RecordPollerDuration("stats", s.exportNetworkStats),
	)
	go statsPoller.Start(ctx)
}

func (s *Service) exportNetworkStats(ctx context.Context) error {
	stats, err := s.db.CalculateNetworkStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to calculate network stats: %w", err)
	}

	metrics.RecordNetworkStats(stats.TotalHashPower, stats.CirculatingSupply)

	log.Ctx(ctx).Debug().
		Int64("total_hash_power", stats.TotalHashPower).
		Int64("circulating_supply", stats.CirculatingSupply).
		Msg("exported network stats")

	return nil
}
