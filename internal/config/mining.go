package config

import (
	"errors"
	"time"
)

type MiningConfig struct {
	// BlockInterval is how often a block is mined.
	BlockInterval time.Duration `mapstructure:"block-interval"`
	// BlockReward is the fixed reward per block in micro-units of HVT.
	BlockReward int64 `mapstructure:"block-reward"`
	// ClaimWindow is how long an allocated reward stays claimable.
	ClaimWindow time.Duration `mapstructure:"claim-window"`
	// InactivityWindow is how long an account may go without claiming
	// before it is excluded from allocation.
	InactivityWindow time.Duration `mapstructure:"inactivity-window"`
	// TickTimeout bounds a single mine-and-allocate cycle.
	TickTimeout time.Duration `mapstructure:"tick-timeout"`
	// SweepInterval is how often the inactivity sweep runs.
	SweepInterval     time.Duration `mapstructure:"sweep-interval"`
	AllocationWorkers int           `mapstructure:"allocation-workers"`
	MaxRetryTimes     uint          `mapstructure:"max-retry-times"`
	RetryInterval     time.Duration `mapstructure:"retry-interval"`
}

func (cfg *MiningConfig) Validate() error {
	if cfg.BlockInterval <= 0 {
		return errors.New("block-interval must be positive")
	}
	if cfg.BlockReward <= 0 {
		return errors.New("block-reward must be positive")
	}
	if cfg.ClaimWindow <= 0 {
		return errors.New("claim-window must be positive")
	}
	if cfg.InactivityWindow <= 0 {
		return errors.New("inactivity-window must be positive")
	}
	if cfg.TickTimeout <= 0 {
		return errors.New("tick-timeout must be positive")
	}
	if cfg.SweepInterval <= 0 {
		return errors.New("sweep-interval must be positive")
	}
	if cfg.AllocationWorkers <= 0 {
		return errors.New("allocation-workers must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("retry-interval must be positive")
	}

	return nil
}
