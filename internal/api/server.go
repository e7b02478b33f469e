package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/services"
)

// Server exposes the mining core over HTTP. Deposit approval and withdrawal
// settlement sit under /v1/admin and are expected to be reachable only from
// the operator network.
type Server struct {
	httpServer *http.Server
	service    *services.Service
}

func New(cfg *config.ServerConfig, service *services.Service) *Server {
	srv := &Server{service: service}

	r := chi.NewRouter()
	r.Use(tracingMiddleware)
	r.Use(durationMiddleware)

	r.Get("/healthcheck", srv.handleHealthcheck)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/accounts", srv.handleRegisterAccount)
		r.Get("/accounts/{accountId}/balance", srv.handleGetBalance)
		r.Get("/accounts/{accountId}/claimable", srv.handleGetClaimable)
		r.Get("/accounts/{accountId}/stakes", srv.handleGetStakes)
		r.Post("/accounts/{accountId}/claim", srv.handleClaim)

		r.Post("/deposits", srv.handleRequestDeposit)
		r.Post("/withdrawals", srv.handleRequestWithdrawal)
		r.Post("/transfers", srv.handleTransfer)
		r.Post("/stakes", srv.handleCreateStake)
		r.Post("/hashpower", srv.handleBuyHashPower)

		r.Get("/blocks/{height}", srv.handleGetBlock)
		r.Get("/stats", srv.handleGetStats)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/deposits/{entryId}/approve", srv.handleApproveDeposit)
			r.Post("/deposits/{entryId}/reject", srv.handleRejectDeposit)
			r.Post("/withdrawals/{entryId}/complete", srv.handleCompleteWithdrawal)
			r.Post("/withdrawals/{entryId}/reject", srv.handleRejectWithdrawal)
		})
	})

	srv.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return srv
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("starting api server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server failed: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
