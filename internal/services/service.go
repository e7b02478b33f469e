package services

import (
	"context"

	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/locker"
	"github.com/hashvault-io/hashvault-core/internal/queue"
)

type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	queueManager *queue.QueueManager
	locker       *locker.AccountLocker
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	qm *queue.QueueManager,
) *Service {
	return &Service{
		cfg:          cfg,
		db:           db,
		queueManager: qm,
		locker:       locker.NewAccountLocker(),
	}
}

// StartBackgroundJobs launches the pollers behind the mining engine. Each
// runs until ctx is cancelled.
func (s *Service) StartBackgroundJobs(ctx context.Context) {
	// Mine blocks on the configured interval
	s.StartBlockScheduler(ctx)
	// Expire idle accounts out of allocation
	s.StartInactivitySweeper(ctx)
	// Accrue and release locked stakes
	s.StartStakePoller(ctx)
	// Export network gauges
	s.StartStatsPoller(ctx)
}
