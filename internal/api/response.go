package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/types"
)

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataResponse{Data: data}); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps domain errors onto HTTP statuses. Anything unexpected is a
// 500 with a generic message; the detail stays in the logs.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, types.ErrInvalidAmount):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, types.ErrAccountFrozen),
		errors.Is(err, types.ErrAccountBanned):
		status = http.StatusForbidden
		message = err.Error()
	case db.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, types.ErrInsufficientBalance),
		errors.Is(err, types.ErrCooldownActive),
		errors.Is(err, types.ErrNoClaimableRewards),
		errors.Is(err, types.ErrTransferDisabled),
		errors.Is(err, types.ErrDuplicateTxHash),
		db.IsDuplicateKeyError(err):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, types.ErrTemporarilyUnavailable):
		status = http.StatusServiceUnavailable
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(errorResponse{Error: message}); encErr != nil {
		log.Error().Err(encErr).Msg("failed to encode error response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		//nolint:errcheck
		json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
		return false
	}

	return true
}
