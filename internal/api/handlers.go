package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hashvault-io/hashvault-core/internal/types"
)

type registerAccountRequest struct {
	AccountID    string `json:"account_id"`
	ReferralCode string `json:"referral_code"`
}

func (s *Server) handleRegisterAccount(w http.ResponseWriter, r *http.Request) {
	var req registerAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AccountID == "" {
		writeError(w, r, fmt.Errorf("%w: account_id required", types.ErrInvalidAmount))
		return
	}

	accountDoc, err := s.service.RegisterAccount(r.Context(), req.AccountID, req.ReferralCode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, accountDoc)
}

func (s *Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.service.GetBalance(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, balance)
}

func (s *Server) handleGetClaimable(w http.ResponseWriter, r *http.Request) {
	rewards, err := s.service.GetClaimable(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, rewards)
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Claim(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, result)
}

func (s *Server) handleGetStakes(w http.ResponseWriter, r *http.Request) {
	stakes, err := s.service.GetStakes(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, stakes)
}

type depositRequest struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	TxHash    string `json:"tx_hash"`
	Network   string `json:"network"`
}

func (s *Server) handleRequestDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entryDoc, err := s.service.RequestDeposit(r.Context(), req.AccountID, req.Amount, req.TxHash, req.Network)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, entryDoc)
}

type withdrawalRequest struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Address   string `json:"address"`
	Network   string `json:"network"`
}

func (s *Server) handleRequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req withdrawalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entryDoc, err := s.service.RequestWithdrawal(r.Context(), req.AccountID, req.Amount, req.Address, req.Network)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, entryDoc)
}

type transferRequest struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Memo          string `json:"memo"`
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	currency := types.Currency(req.Currency)
	if currency != types.CurrencyUSDT && currency != types.CurrencyHVT {
		writeError(w, r, fmt.Errorf("%w: unknown currency %q", types.ErrInvalidAmount, req.Currency))
		return
	}

	entryDoc, err := s.service.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, req.Amount, currency, req.Memo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, entryDoc)
}

type stakeRequest struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	TermDays  int    `json:"term_days"`
}

func (s *Server) handleCreateStake(w http.ResponseWriter, r *http.Request) {
	var req stakeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	stakeDoc, err := s.service.CreateStake(r.Context(), req.AccountID, req.Amount, req.TermDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, stakeDoc)
}

type hashPowerRequest struct {
	AccountID string `json:"account_id"`
	Units     int64  `json:"units"`
}

func (s *Server) handleBuyHashPower(w http.ResponseWriter, r *http.Request) {
	var req hashPowerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	accountDoc, err := s.service.BuyHashPower(r.Context(), req.AccountID, req.Units)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, accountDoc)
}

func (s *Server) handleGetBlock(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseInt(chi.URLParam(r, "height"), 10, 64)
	if err != nil || height < 1 {
		writeError(w, r, fmt.Errorf("%w: invalid block height", types.ErrInvalidAmount))
		return
	}

	blockDoc, err := s.service.GetBlock(r.Context(), height)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, blockDoc)
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.GetGlobalStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, stats)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) handleApproveDeposit(w http.ResponseWriter, r *http.Request) {
	entryDoc, err := s.service.ApproveDeposit(r.Context(), chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, entryDoc)
}

func (s *Server) handleRejectDeposit(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entryDoc, err := s.service.RejectDeposit(r.Context(), chi.URLParam(r, "entryId"), req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, entryDoc)
}

func (s *Server) handleCompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	entryDoc, err := s.service.CompleteWithdrawal(r.Context(), chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, entryDoc)
}

func (s *Server) handleRejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entryDoc, err := s.service.RejectWithdrawal(r.Context(), chi.URLParam(r, "entryId"), req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, entryDoc)
}
