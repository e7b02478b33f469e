package types

import (
	sdkmath "cosmossdk.io/math"
)

// All monetary amounts are stored as int64 micro-units (10^-6 of a token).
// Arithmetic that can produce fractions runs in fixed-point decimals and is
// truncated back to micro-units, never rounded up.
const MicroUnit = int64(1_000_000)

type Currency string

const (
	CurrencyUSDT Currency = "USDT"
	CurrencyHVT  Currency = "HVT"
)

func (c Currency) String() string {
	return string(c)
}

// ProportionalShare computes reward * hashPower / totalHashPower in
// fixed-point decimal, truncated to micro-units. The truncation remainder is
// dropped, so the sum of shares over all participants never exceeds the
// reward.
func ProportionalShare(reward, hashPower, totalHashPower int64) int64 {
	if reward <= 0 || hashPower <= 0 || totalHashPower <= 0 {
		return 0
	}

	share := sdkmath.LegacyNewDec(reward).
		MulInt64(hashPower).
		QuoInt64(totalHashPower)

	return share.TruncateInt64()
}

// DailyStakeReward computes the fixed daily reward of a stake from its
// principal and a yearly rate, truncated to micro-units.
func DailyStakeReward(principal int64, apr sdkmath.LegacyDec) int64 {
	if principal <= 0 || !apr.IsPositive() {
		return 0
	}

	reward := apr.MulInt64(principal).QuoInt64(365)

	return reward.TruncateInt64()
}

// CommissionOf computes rate * amount truncated to micro-units, used for
// referral commissions on approved deposits.
func CommissionOf(amount int64, rate sdkmath.LegacyDec) int64 {
	if amount <= 0 || !rate.IsPositive() {
		return 0
	}

	return rate.MulInt64(amount).TruncateInt64()
}
