package services

import (
	"os"
	"testing"
	"time"

	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/queue"
	"github.com/hashvault-io/hashvault-core/tests/mocks"
)

func TestMain(m *testing.M) {
	// service methods record metrics, so the collectors must exist before
	// any test runs
	metrics.Init(9999)

	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Mining: config.MiningConfig{
			BlockInterval:     time.Hour,
			BlockReward:       50_000_000,
			ClaimWindow:       48 * time.Hour,
			InactivityWindow:  48 * time.Hour,
			TickTimeout:       30 * time.Second,
			SweepInterval:     time.Hour,
			AllocationWorkers: 4,
			MaxRetryTimes:     2,
			RetryInterval:     time.Millisecond,
		},
		Gateway: config.GatewayConfig{
			WithdrawalFee:          1_000_000,
			WithdrawalCooldown:     24 * time.Hour,
			MaxSupply:              21_000_000_000_000,
			TransferLockThreshold:  "0.8",
			StakingAPR:             "0.365",
			AllowedStakeTerms:      []int{30, 90, 180},
			HashPowerPrice:         10_000_000,
			ReferralCommissionRate: "0.05",
			ReferralHashPowerRate:  "0.1",
			StakeAccrualInterval:   time.Hour,
			StakeBatchLimit:        100,
			StakeWorkers:           2,
			MaxRetryTimes:          2,
			RetryInterval:          time.Millisecond,
		},
		Queue: config.QueueConfig{Enabled: false},
	}
}

// testService wires a service over the db mock with a disabled queue, the
// setup every unit test in this package starts from.
func testService(dbMock *mocks.DbInterface) *Service {
	qm, _ := queue.NewQueueManager(&config.QueueConfig{Enabled: false})
	return NewService(testConfig(), dbMock, qm)
}
