package cli

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/observability/tracing"
	"github.com/hashvault-io/hashvault-core/internal/queue"
	"github.com/hashvault-io/hashvault-core/internal/services"
)

// MineBlockCmd forces a single mining tick outside the scheduler, for
// operations and local debugging.
func MineBlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine-block",
		Short: "Mines a single block and allocates its rewards",
		Args:  cobra.ExactArgs(0),
		RunE:  mineBlock,
	}

	return cmd
}

func mineBlock(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbClient.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to shut down db client")
		}
	}()

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		return err
	}
	defer qm.Shutdown()

	service := services.NewService(cfg, dbClient, qm)
	if err := service.MineBlockTick(ctx); err != nil {
		return err
	}

	blockDoc, err := dbClient.GetLatestBlock(ctx)
	if err != nil {
		return err
	}
	spew.Dump(blockDoc)

	return nil
}
