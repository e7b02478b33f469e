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
	"github.com/hashvault-io/hashvault-core/testutil"
)

func TestSaveAndFindUnclaimedRewards(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	accountDoc := testutil.RandomAccount(t)
	require.NoError(t, testDB.CreateAccount(ctx, accountDoc))

	now := time.Now().UTC().Truncate(time.Millisecond)
	expiry := now.Add(48 * time.Hour)

	rewards := []*model.UnclaimedRewardDocument{
		model.NewUnclaimedRewardDocument(accountDoc.ID, 10, 1_500_000, now, expiry),
		model.NewUnclaimedRewardDocument(accountDoc.ID, 11, 2_500_000, now, expiry),
		// already past its claim window, must never surface
		model.NewUnclaimedRewardDocument(accountDoc.ID, 9, 9_000_000, now.Add(-72*time.Hour), now.Add(-time.Hour)),
		// expiry comparison is strict: a row expiring exactly now is gone
		model.NewUnclaimedRewardDocument(accountDoc.ID, 8, 7_000_000, now.Add(-48*time.Hour), now),
	}
	require.NoError(t, testDB.SaveUnclaimedRewards(ctx, rewards))

	claimable, err := testDB.FindClaimableRewards(ctx, accountDoc.ID, now)
	require.NoError(t, err)
	require.Len(t, claimable, 2)
	// newest block first
	assert.Equal(t, int64(11), claimable[0].BlockHeight)
	assert.Equal(t, int64(10), claimable[1].BlockHeight)

	// one millisecond before expiry it is still claimable
	claimable, err = testDB.FindClaimableRewards(ctx, accountDoc.ID, now.Add(-time.Millisecond))
	require.NoError(t, err)
	assert.Len(t, claimable, 3)

	// re-allocating the same block aborts the whole batch
	err = testDB.SaveUnclaimedRewards(ctx, []*model.UnclaimedRewardDocument{
		model.NewUnclaimedRewardDocument(accountDoc.ID, 12, 1_000_000, now, expiry),
		model.NewUnclaimedRewardDocument(accountDoc.ID, 11, 1_000_000, now, expiry),
	})
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))

	claimable, err = testDB.FindClaimableRewards(ctx, accountDoc.ID, now)
	require.NoError(t, err)
	assert.Len(t, claimable, 2)
}

func TestClaimRewards(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	accountDoc := testutil.RandomAccount(t)
	require.NoError(t, testDB.CreateAccount(ctx, accountDoc))

	now := time.Now().UTC().Truncate(time.Millisecond)
	expiry := now.Add(48 * time.Hour)

	rewards := []*model.UnclaimedRewardDocument{
		model.NewUnclaimedRewardDocument(accountDoc.ID, 20, 1_000_000, now, expiry),
		model.NewUnclaimedRewardDocument(accountDoc.ID, 21, 3_000_000, now, expiry),
		model.NewUnclaimedRewardDocument(accountDoc.ID, 22, 500_000, now.Add(-72*time.Hour), now.Add(-time.Hour)),
	}
	require.NoError(t, testDB.SaveUnclaimedRewards(ctx, rewards))

	total, rows, err := testDB.ClaimRewards(ctx, accountDoc.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000), total)
	assert.Equal(t, int64(2), rows)

	stored, err := testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000), stored.HvtBalance)

	activityDoc, err := testDB.GetActivityRecord(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.True(t, activityDoc.Active)
	assert.Equal(t, int64(1), activityDoc.TotalClaims)
	assert.Equal(t, now, activityDoc.LastClaimAt.UTC())

	// the expired row stays out, nothing left to claim
	total, rows, err = testDB.ClaimRewards(ctx, accountDoc.ID, now)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, rows)

	stored, err = testDB.GetAccount(ctx, accountDoc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000), stored.HvtBalance)
}

func TestGetAccountsWithExpiredRewards(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	missed := testutil.RandomAccount(t)
	require.NoError(t, testDB.CreateAccount(ctx, missed))
	current := testutil.RandomAccount(t)
	require.NoError(t, testDB.CreateAccount(ctx, current))

	now := time.Now().UTC().Truncate(time.Millisecond)

	rewards := []*model.UnclaimedRewardDocument{
		// expired 30 minutes ago, inside the sweep window
		model.NewUnclaimedRewardDocument(missed.ID, 30, 1_000_000, now.Add(-49*time.Hour), now.Add(-30*time.Minute)),
		// still claimable
		model.NewUnclaimedRewardDocument(current.ID, 31, 1_000_000, now, now.Add(48*time.Hour)),
		// expired long before the window opened
		model.NewUnclaimedRewardDocument(current.ID, 29, 1_000_000, now.Add(-100*time.Hour), now.Add(-50*time.Hour)),
	}
	require.NoError(t, testDB.SaveUnclaimedRewards(ctx, rewards))

	accountIDs, err := testDB.GetAccountsWithExpiredRewards(ctx, now.Add(-time.Hour), now)
	require.NoError(t, err)
	require.Len(t, accountIDs, 1)
	assert.Equal(t, missed.ID, accountIDs[0])

	insertActivityRecord(t, missed.ID, true, now)
	require.NoError(t, testDB.IncrementMissedClaims(ctx, accountIDs))
	activityDoc, err := testDB.GetActivityRecord(ctx, missed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), activityDoc.MissedClaims)
}
