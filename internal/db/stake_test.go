//go:build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/types"
	"github.com/hashvault-io/hashvault-core/testutil"
)

func newStake(accountID string, amount int64, termDays int, now time.Time) *model.StakeDocument {
	return &model.StakeDocument{
		AccountID:     accountID,
		Amount:        amount,
		TermDays:      termDays,
		DailyReward:   amount / 1000, // 0.1% a day, precision is not under test here
		Status:        types.StakeActive,
		CreatedAt:     now,
		UnlockAt:      now.Add(time.Duration(termDays) * 24 * time.Hour),
		LastAccruedAt: now,
	}
}

func TestCreateStake(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	accountDoc := testutil.RandomAccount(t)
	accountDoc.HvtBalance = 10_000_000
	require.NoError(t, testDB.CreateAccount(ctx, accountDoc))

	now := time.Now().UTC().Truncate(time.Millisecond)
	stakeDoc := newStake(accountDoc.ID, 6_000_000, 30, now)

	require.NoError(t, testDB.CreateStake(ctx, stakeDoc))

	stored, err := testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000), stored.HvtBalance)
	assert.Equal(t, int64(6_000_000), stored.StakedBalance)

	stakes, err := testDB.GetStakesByAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	require.Len(t, stakes, 1)
	assert.Equal(t, types.StakeActive, stakes[0].Status)

	// principal the liquid balance cannot cover leaves everything untouched
	err = testDB.CreateStake(ctx, newStake(accountDoc.ID, 5_000_000, 30, now))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	stored, err = testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000), stored.HvtBalance)

	stakes, err = testDB.GetStakesByAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Len(t, stakes, 1)
}

func TestAccrueStakeReward(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	accountDoc := testutil.RandomAccount(t)
	accountDoc.HvtBalance = 1_000_000_000
	require.NoError(t, testDB.CreateAccount(ctx, accountDoc))

	now := time.Now().UTC().Truncate(time.Millisecond)
	created := now.Add(-72 * time.Hour)
	stakeDoc := newStake(accountDoc.ID, 1_000_000_000, 30, created)
	require.NoError(t, testDB.CreateStake(ctx, stakeDoc))

	accruable, err := testDB.FindAccruableStakes(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, accruable, 1)

	stake := accruable[0]
	require.NoError(t, testDB.AccrueStakeReward(ctx, stake.ID, stake.LastAccruedAt, 3))

	stored, err := testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	// 3 days at 1 HVT a day
	assert.Equal(t, int64(3_000_000), stored.HvtBalance)

	// a competing poller holding the stale accrual cursor gets a no-op
	err = testDB.AccrueStakeReward(ctx, stake.ID, stake.LastAccruedAt, 3)
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))

	stored, err = testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3_000_000), stored.HvtBalance)

	// cursor advanced three days, nothing accruable until another day passes
	accruable, err = testDB.FindAccruableStakes(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, accruable)
}

func TestReleaseStake(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	accountDoc := testutil.RandomAccount(t)
	accountDoc.HvtBalance = 500_000_000
	require.NoError(t, testDB.CreateAccount(ctx, accountDoc))

	now := time.Now().UTC().Truncate(time.Millisecond)
	created := now.Add(-31 * 24 * time.Hour)
	stakeDoc := newStake(accountDoc.ID, 500_000_000, 30, created)
	require.NoError(t, testDB.CreateStake(ctx, stakeDoc))

	releasable, err := testDB.FindReleasableStakes(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, releasable, 1)

	require.NoError(t, testDB.ReleaseStake(ctx, releasable[0].ID))

	stored, err := testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000_000), stored.HvtBalance)
	assert.Zero(t, stored.StakedBalance)

	stakes, err := testDB.GetStakesByAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	require.Len(t, stakes, 1)
	assert.Equal(t, types.StakeReleased, stakes[0].Status)

	// releasing again must not credit the principal twice
	err = testDB.ReleaseStake(ctx, releasable[0].ID)
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))

	stored, err = testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000_000), stored.HvtBalance)
}
