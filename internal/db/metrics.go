package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
)

// DbWithMetrics decorates a DbInterface with latency metrics per method.
type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)

	return err
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) Shutdown(ctx context.Context) error {
	return d.db.Shutdown(ctx)
}

func (d *DbWithMetrics) CreateAccount(ctx context.Context, accountDoc *model.AccountDocument) error {
	return d.run("CreateAccount", func() error {
		return d.db.CreateAccount(ctx, accountDoc)
	})
}

func (d *DbWithMetrics) GetAccount(ctx context.Context, accountID string) (result *model.AccountDocument, err error) {
	//nolint:errcheck
	d.run("GetAccount", func() error {
		result, err = d.db.GetAccount(ctx, accountID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAccountByReferralCode(ctx context.Context, code string) (result *model.AccountDocument, err error) {
	//nolint:errcheck
	d.run("GetAccountByReferralCode", func() error {
		result, err = d.db.GetAccountByReferralCode(ctx, code)
		return err
	})
	return
}

func (d *DbWithMetrics) PurchaseHashPower(ctx context.Context, accountID string, cost, power int64, referrerID string, referralBonus int64, now time.Time) error {
	return d.run("PurchaseHashPower", func() error {
		return d.db.PurchaseHashPower(ctx, accountID, cost, power, referrerID, referralBonus, now)
	})
}

func (d *DbWithMetrics) GetEligibleMiners(ctx context.Context) (result []*model.AccountDocument, err error) {
	//nolint:errcheck
	d.run("GetEligibleMiners", func() error {
		result, err = d.db.GetEligibleMiners(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) InsertBlock(ctx context.Context, blockDoc *model.BlockDocument) error {
	return d.run("InsertBlock", func() error {
		return d.db.InsertBlock(ctx, blockDoc)
	})
}

func (d *DbWithMetrics) GetLatestBlock(ctx context.Context) (result *model.BlockDocument, err error) {
	//nolint:errcheck
	d.run("GetLatestBlock", func() error {
		result, err = d.db.GetLatestBlock(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) GetBlock(ctx context.Context, height int64) (result *model.BlockDocument, err error) {
	//nolint:errcheck
	d.run("GetBlock", func() error {
		result, err = d.db.GetBlock(ctx, height)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveUnclaimedRewards(ctx context.Context, rewardDocs []*model.UnclaimedRewardDocument) error {
	return d.run("SaveUnclaimedRewards", func() error {
		return d.db.SaveUnclaimedRewards(ctx, rewardDocs)
	})
}

func (d *DbWithMetrics) FindClaimableRewards(ctx context.Context, accountID string, now time.Time) (result []model.UnclaimedRewardDocument, err error) {
	//nolint:errcheck
	d.run("FindClaimableRewards", func() error {
		result, err = d.db.FindClaimableRewards(ctx, accountID, now)
		return err
	})
	return
}

func (d *DbWithMetrics) ClaimRewards(ctx context.Context, accountID string, now time.Time) (total int64, rows int64, err error) {
	//nolint:errcheck
	d.run("ClaimRewards", func() error {
		total, rows, err = d.db.ClaimRewards(ctx, accountID, now)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAccountsWithExpiredRewards(ctx context.Context, since, until time.Time) (result []string, err error) {
	//nolint:errcheck
	d.run("GetAccountsWithExpiredRewards", func() error {
		result, err = d.db.GetAccountsWithExpiredRewards(ctx, since, until)
		return err
	})
	return
}

func (d *DbWithMetrics) GetActivityRecord(ctx context.Context, accountID string) (result *model.ActivityRecordDocument, err error) {
	//nolint:errcheck
	d.run("GetActivityRecord", func() error {
		result, err = d.db.GetActivityRecord(ctx, accountID)
		return err
	})
	return
}

func (d *DbWithMetrics) MarkInactiveSince(ctx context.Context, cutoff time.Time) (count int64, err error) {
	//nolint:errcheck
	d.run("MarkInactiveSince", func() error {
		count, err = d.db.MarkInactiveSince(ctx, cutoff)
		return err
	})
	return
}

func (d *DbWithMetrics) IncrementMissedClaims(ctx context.Context, accountIDs []string) error {
	return d.run("IncrementMissedClaims", func() error {
		return d.db.IncrementMissedClaims(ctx, accountIDs)
	})
}

func (d *DbWithMetrics) InsertLedgerEntry(ctx context.Context, entryDoc *model.LedgerEntryDocument) error {
	return d.run("InsertLedgerEntry", func() error {
		return d.db.InsertLedgerEntry(ctx, entryDoc)
	})
}

func (d *DbWithMetrics) GetLedgerEntry(ctx context.Context, entryID string) (result *model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerEntry", func() error {
		result, err = d.db.GetLedgerEntry(ctx, entryID)
		return err
	})
	return
}

func (d *DbWithMetrics) ApproveDeposit(ctx context.Context, entryID string, referralEntry *model.LedgerEntryDocument, now time.Time) (result *model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("ApproveDeposit", func() error {
		result, err = d.db.ApproveDeposit(ctx, entryID, referralEntry, now)
		return err
	})
	return
}

func (d *DbWithMetrics) RejectDeposit(ctx context.Context, entryID, reason string, now time.Time) (result *model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("RejectDeposit", func() error {
		result, err = d.db.RejectDeposit(ctx, entryID, reason, now)
		return err
	})
	return
}

func (d *DbWithMetrics) ReserveWithdrawal(ctx context.Context, entryDoc *model.LedgerEntryDocument) error {
	return d.run("ReserveWithdrawal", func() error {
		return d.db.ReserveWithdrawal(ctx, entryDoc)
	})
}

func (d *DbWithMetrics) CompleteWithdrawal(ctx context.Context, entryID string, now time.Time) (result *model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("CompleteWithdrawal", func() error {
		result, err = d.db.CompleteWithdrawal(ctx, entryID, now)
		return err
	})
	return
}

func (d *DbWithMetrics) RejectWithdrawal(ctx context.Context, entryID, reason string, now time.Time) (result *model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("RejectWithdrawal", func() error {
		result, err = d.db.RejectWithdrawal(ctx, entryID, reason, now)
		return err
	})
	return
}

func (d *DbWithMetrics) GetLastCompletedWithdrawal(ctx context.Context, accountID string) (result *model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("GetLastCompletedWithdrawal", func() error {
		result, err = d.db.GetLastCompletedWithdrawal(ctx, accountID)
		return err
	})
	return
}

func (d *DbWithMetrics) TransferBalances(ctx context.Context, entryDoc *model.LedgerEntryDocument) error {
	return d.run("TransferBalances", func() error {
		return d.db.TransferBalances(ctx, entryDoc)
	})
}

func (d *DbWithMetrics) CreateStake(ctx context.Context, stakeDoc *model.StakeDocument) error {
	return d.run("CreateStake", func() error {
		return d.db.CreateStake(ctx, stakeDoc)
	})
}

func (d *DbWithMetrics) GetStakesByAccount(ctx context.Context, accountID string) (result []model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("GetStakesByAccount", func() error {
		result, err = d.db.GetStakesByAccount(ctx, accountID)
		return err
	})
	return
}

func (d *DbWithMetrics) FindAccruableStakes(ctx context.Context, now time.Time, limit int64) (result []model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("FindAccruableStakes", func() error {
		result, err = d.db.FindAccruableStakes(ctx, now, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) AccrueStakeReward(ctx context.Context, stakeID primitive.ObjectID, lastAccruedAt time.Time, days int64) error {
	return d.run("AccrueStakeReward", func() error {
		return d.db.AccrueStakeReward(ctx, stakeID, lastAccruedAt, days)
	})
}

func (d *DbWithMetrics) FindReleasableStakes(ctx context.Context, now time.Time, limit int64) (result []model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("FindReleasableStakes", func() error {
		result, err = d.db.FindReleasableStakes(ctx, now, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) ReleaseStake(ctx context.Context, stakeID primitive.ObjectID) error {
	return d.run("ReleaseStake", func() error {
		return d.db.ReleaseStake(ctx, stakeID)
	})
}

func (d *DbWithMetrics) CalculateNetworkStats(ctx context.Context) (result *NetworkStatsResult, err error) {
	//nolint:errcheck
	d.run("CalculateNetworkStats", func() error {
		result, err = d.db.CalculateNetworkStats(ctx)
		return err
	})
	return
}
