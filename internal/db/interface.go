package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	Shutdown(ctx context.Context) error

	// Accounts
	CreateAccount(ctx context.Context, accountDoc *model.AccountDocument) error
	GetAccount(ctx context.Context, accountID string) (*model.AccountDocument, error)
	GetAccountByReferralCode(ctx context.Context, code string) (*model.AccountDocument, error)
	PurchaseHashPower(ctx context.Context, accountID string, cost, power int64, referrerID string, referralBonus int64, now time.Time) error
	GetEligibleMiners(ctx context.Context) ([]*model.AccountDocument, error)

	// Blocks
	InsertBlock(ctx context.Context, blockDoc *model.BlockDocument) error
	GetLatestBlock(ctx context.Context) (*model.BlockDocument, error)
	GetBlock(ctx context.Context, height int64) (*model.BlockDocument, error)

	// Rewards
	SaveUnclaimedRewards(ctx context.Context, rewardDocs []*model.UnclaimedRewardDocument) error
	FindClaimableRewards(ctx context.Context, accountID string, now time.Time) ([]model.UnclaimedRewardDocument, error)
	ClaimRewards(ctx context.Context, accountID string, now time.Time) (int64, int64, error)
	GetAccountsWithExpiredRewards(ctx context.Context, since, until time.Time) ([]string, error)

	// Activity
	GetActivityRecord(ctx context.Context, accountID string) (*model.ActivityRecordDocument, error)
	MarkInactiveSince(ctx context.Context, cutoff time.Time) (int64, error)
	IncrementMissedClaims(ctx context.Context, accountIDs []string) error

	// Ledger
	InsertLedgerEntry(ctx context.Context, entryDoc *model.LedgerEntryDocument) error
	GetLedgerEntry(ctx context.Context, entryID string) (*model.LedgerEntryDocument, error)
	ApproveDeposit(ctx context.Context, entryID string, referralEntry *model.LedgerEntryDocument, now time.Time) (*model.LedgerEntryDocument, error)
	RejectDeposit(ctx context.Context, entryID, reason string, now time.Time) (*model.LedgerEntryDocument, error)
	ReserveWithdrawal(ctx context.Context, entryDoc *model.LedgerEntryDocument) error
	CompleteWithdrawal(ctx context.Context, entryID string, now time.Time) (*model.LedgerEntryDocument, error)
	RejectWithdrawal(ctx context.Context, entryID, reason string, now time.Time) (*model.LedgerEntryDocument, error)
	GetLastCompletedWithdrawal(ctx context.Context, accountID string) (*model.LedgerEntryDocument, error)
	TransferBalances(ctx context.Context, entryDoc *model.LedgerEntryDocument) error

	// Stakes
	CreateStake(ctx context.Context, stakeDoc *model.StakeDocument) error
	GetStakesByAccount(ctx context.Context, accountID string) ([]model.StakeDocument, error)
	FindAccruableStakes(ctx context.Context, now time.Time, limit int64) ([]model.StakeDocument, error)
	AccrueStakeReward(ctx context.Context, stakeID primitive.ObjectID, lastAccruedAt time.Time, days int64) error
	FindReleasableStakes(ctx context.Context, now time.Time, limit int64) ([]model.StakeDocument, error)
	ReleaseStake(ctx context.Context, stakeID primitive.ObjectID) error

	// Stats
	CalculateNetworkStats(ctx context.Context) (*NetworkStatsResult, error)
}
