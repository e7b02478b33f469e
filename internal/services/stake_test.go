package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/tests/mocks"
)

func TestAccruableDays(t *testing.T) {
	now := time.Now().UTC()

	t.Run("whole days only", func(t *testing.T) {
		stake := &model.StakeDocument{
			LastAccruedAt: now.Add(-50 * time.Hour),
			UnlockAt:      now.Add(30 * 24 * time.Hour),
		}
		require.Equal(t, int64(2), accruableDays(stake, now))
	})

	t.Run("clipped at unlock", func(t *testing.T) {
		stake := &model.StakeDocument{
			LastAccruedAt: now.Add(-10 * 24 * time.Hour),
			UnlockAt:      now.Add(-7 * 24 * time.Hour),
		}
		// Only the 3 days up to unlock are owed.
		require.Equal(t, int64(3), accruableDays(stake, now))
	})

	t.Run("nothing owed after unlock accrual", func(t *testing.T) {
		stake := &model.StakeDocument{
			LastAccruedAt: now.Add(-time.Hour),
			UnlockAt:      now.Add(-time.Hour),
		}
		require.Equal(t, int64(0), accruableDays(stake, now))
	})
}

func TestProcessStakes(t *testing.T) {
	internalCtx := mock.Anything

	t.Run("accrues overdue stakes and releases matured ones", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		srv := testService(dbMock)

		now := time.Now().UTC()
		accruableID := primitive.NewObjectID()
		releasableID := primitive.NewObjectID()

		dbMock.On("FindAccruableStakes", internalCtx, mock.Anything, int64(100)).
			Return([]model.StakeDocument{{
				ID:            accruableID,
				AccountID:     "alice",
				DailyReward:   1_000_000,
				LastAccruedAt: now.Add(-72 * time.Hour),
				UnlockAt:      now.Add(10 * 24 * time.Hour),
			}}, nil).Once()
		dbMock.On("AccrueStakeReward", internalCtx, accruableID, mock.Anything, int64(3)).
			Return(nil).Once()

		dbMock.On("FindReleasableStakes", internalCtx, mock.Anything, int64(100)).
			Return([]model.StakeDocument{{
				ID:        releasableID,
				AccountID: "bob",
				Amount:    500_000_000,
			}}, nil).Once()
		dbMock.On("ReleaseStake", internalCtx, releasableID).Return(nil).Once()

		require.NoError(t, srv.processStakes(t.Context()))
	})

	t.Run("a competing poller winning the accrual is not an error", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		srv := testService(dbMock)

		now := time.Now().UTC()
		stakeID := primitive.NewObjectID()

		dbMock.On("FindAccruableStakes", internalCtx, mock.Anything, int64(100)).
			Return([]model.StakeDocument{{
				ID:            stakeID,
				AccountID:     "alice",
				LastAccruedAt: now.Add(-25 * time.Hour),
				UnlockAt:      now.Add(24 * time.Hour),
			}}, nil).Once()
		dbMock.On("AccrueStakeReward", internalCtx, stakeID, mock.Anything, int64(1)).
			Return(&db.NotFoundError{Key: stakeID.Hex(), Message: "stake not found or already accrued for this period"}).Once()
		dbMock.On("FindReleasableStakes", internalCtx, mock.Anything, int64(100)).
			Return([]model.StakeDocument{}, nil).Once()

		require.NoError(t, srv.processStakes(t.Context()))
	})
}
