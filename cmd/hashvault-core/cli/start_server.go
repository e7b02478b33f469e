package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hashvault-io/hashvault-core/internal/api"
	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/db"
	dbmodel "github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/observability/tracing"
	"github.com/hashvault-io/hashvault-core/internal/queue"
	"github.com/hashvault-io/hashvault-core/internal/services"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the HashVault core server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating queue manager")
	}

	service := services.NewService(cfg, dbClient, qm)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartBackgroundJobs(ctx)

	apiServer := api.New(&cfg.Server, service)
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Error().Err(err).Msg("api server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down api server")
	}
	qm.Shutdown()
	if err := dbClient.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down db client")
	}

	return nil
}
