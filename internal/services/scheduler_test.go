package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/tests/mocks"
)

func TestMineBlockTick(t *testing.T) {
	internalCtx := mock.Anything

	t.Run("mines next height and allocates proportionally", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		srv := testService(dbMock)

		miners := []*model.AccountDocument{
			{ID: "alice", OwnHashPower: 300},
			{ID: "bob", OwnHashPower: 600, ReferralHashPower: 100},
		}

		dbMock.On("GetLatestBlock", internalCtx).
			Return(&model.BlockDocument{Height: 9}, nil).Once()
		dbMock.On("GetEligibleMiners", internalCtx).Return(miners, nil).Once()
		dbMock.On("InsertBlock", internalCtx, mock.MatchedBy(func(blockDoc *model.BlockDocument) bool {
			return blockDoc.Height == 10 &&
				blockDoc.Reward == 50_000_000 &&
				blockDoc.TotalHashPower == 1000
		})).Return(nil).Once()
		dbMock.On("SaveUnclaimedRewards", internalCtx, mock.MatchedBy(func(docs []*model.UnclaimedRewardDocument) bool {
			if len(docs) != 2 {
				return false
			}
			byAccount := map[string]int64{}
			for _, doc := range docs {
				if doc.BlockHeight != 10 {
					return false
				}
				byAccount[doc.AccountID] = doc.Amount
			}
			// 30% and 70% of the 50 HVT reward
			return byAccount["alice"] == 15_000_000 && byAccount["bob"] == 35_000_000
		})).Return(nil).Once()

		require.NoError(t, srv.MineBlockTick(t.Context()))
	})

	t.Run("first block starts at genesis height", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		srv := testService(dbMock)

		dbMock.On("GetLatestBlock", internalCtx).
			Return(nil, &db.NotFoundError{Key: "latest", Message: "no blocks mined yet"}).Once()
		dbMock.On("GetEligibleMiners", internalCtx).
			Return([]*model.AccountDocument{}, nil).Once()
		dbMock.On("InsertBlock", internalCtx, mock.MatchedBy(func(blockDoc *model.BlockDocument) bool {
			return blockDoc.Height == 1 && blockDoc.TotalHashPower == 0
		})).Return(nil).Once()

		// No hash power means no reward rows are written.
		require.NoError(t, srv.MineBlockTick(t.Context()))
		dbMock.AssertNotCalled(t, "SaveUnclaimedRewards", internalCtx, mock.Anything)
	})

	t.Run("yields when a concurrent scheduler wins the height", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		srv := testService(dbMock)

		dbMock.On("GetLatestBlock", internalCtx).
			Return(&model.BlockDocument{Height: 41}, nil).Once()
		dbMock.On("GetEligibleMiners", internalCtx).
			Return([]*model.AccountDocument{{ID: "alice", OwnHashPower: 10}}, nil).Once()
		dbMock.On("InsertBlock", internalCtx, mock.Anything).
			Return(&db.DuplicateKeyError{Key: "42", Message: "block height already mined"}).Once()

		require.NoError(t, srv.MineBlockTick(t.Context()))
		dbMock.AssertNotCalled(t, "SaveUnclaimedRewards", internalCtx, mock.Anything)
	})

	t.Run("already allocated block is not an error", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		srv := testService(dbMock)

		dbMock.On("GetLatestBlock", internalCtx).
			Return(&model.BlockDocument{Height: 5}, nil).Once()
		dbMock.On("GetEligibleMiners", internalCtx).
			Return([]*model.AccountDocument{{ID: "alice", OwnHashPower: 10}}, nil).Once()
		dbMock.On("InsertBlock", internalCtx, mock.Anything).Return(nil).Once()
		dbMock.On("SaveUnclaimedRewards", internalCtx, mock.Anything).
			Return(&db.DuplicateKeyError{Key: "block 6", Message: "rewards already allocated for this block"}).Once()

		require.NoError(t, srv.MineBlockTick(t.Context()))
	})
}

func TestComputeShares(t *testing.T) {
	srv := testService(mocks.NewDbInterface(t))

	t.Run("drops zero shares and never exceeds the reward", func(t *testing.T) {
		minedAt := time.Now().UTC()
		blockDoc := model.NewBlockDocument(7, 100, 1_000_000, minedAt)

		miners := []*model.AccountDocument{
			{ID: "whale", OwnHashPower: 999_999},
			// One millionth of the power earns less than one micro-unit.
			{ID: "shrimp", OwnHashPower: 1},
		}

		docs := srv.computeShares(blockDoc, miners)
		require.Len(t, docs, 1)
		require.Equal(t, "whale", docs[0].AccountID)

		var total int64
		for _, doc := range docs {
			total += doc.Amount
		}
		require.LessOrEqual(t, total, blockDoc.Reward)
	})

	t.Run("expiry follows the claim window", func(t *testing.T) {
		minedAt := time.Now().UTC()
		blockDoc := model.NewBlockDocument(8, 50_000_000, 100, minedAt)

		docs := srv.computeShares(blockDoc, []*model.AccountDocument{{ID: "alice", OwnHashPower: 100}})
		require.Len(t, docs, 1)
		require.Equal(t, minedAt.Add(48*time.Hour), docs[0].ExpiresAt)
		require.Equal(t, int64(50_000_000), docs[0].Amount)
	})
}
