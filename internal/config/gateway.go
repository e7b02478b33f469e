package config

import (
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

type GatewayConfig struct {
	// WithdrawalFee in micro-units of USDT, charged on every withdrawal.
	WithdrawalFee int64 `mapstructure:"withdrawal-fee"`
	// WithdrawalCooldown is the minimum gap between withdrawals by the
	// same account.
	WithdrawalCooldown time.Duration `mapstructure:"withdrawal-cooldown"`
	// MaxSupply is the simulated total HVT supply in micro-units.
	MaxSupply int64 `mapstructure:"max-supply"`
	// TransferLockThreshold is the fraction of MaxSupply that, once issued,
	// disables external transfers. Decimal string, e.g. "0.8".
	TransferLockThreshold string `mapstructure:"transfer-lock-threshold"`
	// StakingAPR is the yearly staking rate as a decimal string, e.g. "0.12".
	StakingAPR string `mapstructure:"staking-apr"`
	// AllowedStakeTerms lists the accepted stake terms in days.
	AllowedStakeTerms []int `mapstructure:"allowed-stake-terms"`
	// HashPowerPrice is the price of one GH/s in micro-units of USDT.
	HashPowerPrice int64 `mapstructure:"hash-power-price"`
	// ReferralCommissionRate is the fraction of an approved deposit credited
	// to the referrer. Decimal string.
	ReferralCommissionRate string `mapstructure:"referral-commission-rate"`
	// ReferralHashPowerRate is the fraction of purchased hash power granted
	// to the referrer as bonus power. Decimal string.
	ReferralHashPowerRate string `mapstructure:"referral-hash-power-rate"`
	// StakeAccrualInterval controls how often the stake poller looks for
	// stakes due a daily reward or release.
	StakeAccrualInterval time.Duration `mapstructure:"stake-accrual-interval"`
	// StakeBatchLimit caps how many stakes a single poll processes.
	StakeBatchLimit int64 `mapstructure:"stake-batch-limit"`
	// StakeWorkers bounds the goroutines accruing stake rewards concurrently.
	StakeWorkers  int           `mapstructure:"stake-workers"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *GatewayConfig) Validate() error {
	if cfg.WithdrawalFee < 0 {
		return errors.New("withdrawal-fee cannot be negative")
	}
	if cfg.WithdrawalCooldown <= 0 {
		return errors.New("withdrawal-cooldown must be positive")
	}
	if cfg.MaxSupply <= 0 {
		return errors.New("max-supply must be positive")
	}
	if _, err := sdkmath.LegacyNewDecFromStr(cfg.TransferLockThreshold); err != nil {
		return fmt.Errorf("invalid transfer-lock-threshold: %w", err)
	}
	if _, err := sdkmath.LegacyNewDecFromStr(cfg.StakingAPR); err != nil {
		return fmt.Errorf("invalid staking-apr: %w", err)
	}
	if len(cfg.AllowedStakeTerms) == 0 {
		return errors.New("allowed-stake-terms cannot be empty")
	}
	for _, term := range cfg.AllowedStakeTerms {
		if term <= 0 {
			return errors.New("allowed-stake-terms must be positive")
		}
	}
	if cfg.HashPowerPrice <= 0 {
		return errors.New("hash-power-price must be positive")
	}
	if _, err := sdkmath.LegacyNewDecFromStr(cfg.ReferralCommissionRate); err != nil {
		return fmt.Errorf("invalid referral-commission-rate: %w", err)
	}
	if _, err := sdkmath.LegacyNewDecFromStr(cfg.ReferralHashPowerRate); err != nil {
		return fmt.Errorf("invalid referral-hash-power-rate: %w", err)
	}
	if cfg.StakeAccrualInterval <= 0 {
		return errors.New("stake-accrual-interval must be positive")
	}
	if cfg.StakeBatchLimit <= 0 {
		return errors.New("stake-batch-limit must be positive")
	}
	if cfg.StakeWorkers <= 0 {
		return errors.New("stake-workers must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("retry-interval must be positive")
	}

	return nil
}

// TransferLockThresholdDec returns the parsed threshold. Validate must have
// been called first.
func (cfg *GatewayConfig) TransferLockThresholdDec() sdkmath.LegacyDec {
	return sdkmath.LegacyMustNewDecFromStr(cfg.TransferLockThreshold)
}

func (cfg *GatewayConfig) StakingAPRDec() sdkmath.LegacyDec {
	return sdkmath.LegacyMustNewDecFromStr(cfg.StakingAPR)
}

func (cfg *GatewayConfig) ReferralCommissionRateDec() sdkmath.LegacyDec {
	return sdkmath.LegacyMustNewDecFromStr(cfg.ReferralCommissionRate)
}

func (cfg *GatewayConfig) ReferralHashPowerRateDec() sdkmath.LegacyDec {
	return sdkmath.LegacyMustNewDecFromStr(cfg.ReferralHashPowerRate)
}
