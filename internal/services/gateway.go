package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/queue"
	"github.com/hashvault-io/hashvault-core/internal/types"
)

// RequestDeposit records a pending deposit entry. The amount is credited
// only on approval. A tx hash that any account already submitted is
// rejected, which is what prevents replaying the same on-chain transfer.
func (s *Service) RequestDeposit(
	ctx context.Context, accountID string, amount int64, txHash, network string,
) (*model.LedgerEntryDocument, error) {
	if amount <= 0 {
		return nil, types.ErrInvalidAmount
	}
	if txHash == "" {
		return nil, fmt.Errorf("%w: tx hash required", types.ErrInvalidAmount)
	}
	if _, err := s.getOperableAccount(ctx, accountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryDoc := &model.LedgerEntryDocument{
		EntryID:   uuid.NewString(),
		Type:      types.EntryDeposit,
		AccountID: accountID,
		Amount:    amount,
		Currency:  types.CurrencyUSDT,
		Status:    types.StatusPending,
		TxHash:    txHash,
		Network:   network,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.InsertLedgerEntry(ctx, entryDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil, types.ErrDuplicateTxHash
		}
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("account_id", accountID).
		Str("entry_id", entryDoc.EntryID).
		Int64("amount", amount).
		Msg("deposit requested")

	return entryDoc, nil
}

// ApproveDeposit credits a pending deposit. When the depositor was referred,
// the referrer earns a commission in the same transaction, recorded as its
// own completed ledger entry.
func (s *Service) ApproveDeposit(ctx context.Context, entryID string) (*model.LedgerEntryDocument, error) {
	entryDoc, err := s.db.GetLedgerEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entryDoc.Type != types.EntryDeposit {
		return nil, fmt.Errorf("entry %s is not a deposit", entryID)
	}

	depositor, err := s.db.GetAccount(ctx, entryDoc.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var referralEntry *model.LedgerEntryDocument
	if depositor.ReferredBy != "" {
		commission := types.CommissionOf(entryDoc.Amount, s.cfg.Gateway.ReferralCommissionRateDec())
		if commission > 0 {
			referralEntry = &model.LedgerEntryDocument{
				EntryID:        uuid.NewString(),
				Type:           types.EntryReferral,
				AccountID:      depositor.ReferredBy,
				CounterpartyID: depositor.ID,
				Amount:         commission,
				Currency:       entryDoc.Currency,
				Status:         types.StatusCompleted,
				Memo:           fmt.Sprintf("commission on deposit %s", entryID),
				CreatedAt:      now,
				UpdatedAt:      now,
			}
		}
	}

	approved, err := s.db.ApproveDeposit(ctx, entryID, referralEntry, now)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("entry_id", entryID).
		Str("account_id", approved.AccountID).
		Int64("amount", approved.Amount).
		Bool("referral_commission", referralEntry != nil).
		Msg("deposit approved")

	return approved, nil
}

// RejectDeposit marks a pending deposit rejected with a reason.
func (s *Service) RejectDeposit(ctx context.Context, entryID, reason string) (*model.LedgerEntryDocument, error) {
	return s.db.RejectDeposit(ctx, entryID, reason, time.Now().UTC())
}

// RequestWithdrawal reserves amount+fee out of the liquid balance and records
// the pending entry. The per-account lock plus the conditional debit mean two
// concurrent requests cannot both reserve the same funds.
func (s *Service) RequestWithdrawal(
	ctx context.Context, accountID string, amount int64, address, network string,
) (*model.LedgerEntryDocument, error) {
	if amount <= 0 {
		return nil, types.ErrInvalidAmount
	}
	if _, err := s.getOperableAccount(ctx, accountID); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	now := time.Now().UTC()

	last, err := s.db.GetLastCompletedWithdrawal(ctx, accountID)
	if err != nil && !db.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check withdrawal cooldown: %w", err)
	}
	if err == nil && now.Sub(last.UpdatedAt) < s.cfg.Gateway.WithdrawalCooldown {
		return nil, types.ErrCooldownActive
	}

	entryDoc := &model.LedgerEntryDocument{
		EntryID:   uuid.NewString(),
		Type:      types.EntryWithdrawal,
		AccountID: accountID,
		Amount:    amount,
		Fee:       s.cfg.Gateway.WithdrawalFee,
		Currency:  types.CurrencyUSDT,
		Status:    types.StatusPending,
		Address:   address,
		Network:   network,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = retry.Do(func() error {
		return s.db.ReserveWithdrawal(ctx, entryDoc)
	}, s.claimRetryOpts(ctx)...)
	if err != nil {
		if db.IsTransientTxnError(err) {
			return nil, types.ErrTemporarilyUnavailable
		}
		return nil, err
	}

	if err := s.queueManager.Publish(ctx, queue.RoutingKeyWithdrawalRequested, queue.WithdrawalRequestedEvent{
		AccountID: accountID,
		EntryID:   entryDoc.EntryID,
		Amount:    entryDoc.Amount,
		Fee:       entryDoc.Fee,
		Address:   address,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("entry_id", entryDoc.EntryID).Msg("failed to publish withdrawal requested event")
	}

	log.Ctx(ctx).Info().
		Str("account_id", accountID).
		Str("entry_id", entryDoc.EntryID).
		Int64("amount", amount).
		Int64("fee", entryDoc.Fee).
		Msg("withdrawal reserved")

	return entryDoc, nil
}

// CompleteWithdrawal settles a reserved withdrawal after the external payout
// went through.
func (s *Service) CompleteWithdrawal(ctx context.Context, entryID string) (*model.LedgerEntryDocument, error) {
	return s.db.CompleteWithdrawal(ctx, entryID, time.Now().UTC())
}

// RejectWithdrawal refunds a reserved withdrawal, fee included.
func (s *Service) RejectWithdrawal(ctx context.Context, entryID, reason string) (*model.LedgerEntryDocument, error) {
	return s.db.RejectWithdrawal(ctx, entryID, reason, time.Now().UTC())
}

// Transfer moves a balance between two accounts atomically. HVT transfers
// are refused while the supply lock is engaged; USDT transfers are internal
// bookkeeping and always allowed.
func (s *Service) Transfer(
	ctx context.Context, fromID, toID string, amount int64, currency types.Currency, memo string,
) (*model.LedgerEntryDocument, error) {
	if amount <= 0 {
		return nil, types.ErrInvalidAmount
	}
	if fromID == toID {
		return nil, fmt.Errorf("%w: cannot transfer to self", types.ErrInvalidAmount)
	}

	if _, err := s.getOperableAccount(ctx, fromID); err != nil {
		return nil, err
	}
	// The recipient only needs to exist and not be banned; a frozen account
	// may still receive.
	recipient, err := s.db.GetAccount(ctx, toID)
	if err != nil {
		return nil, err
	}
	if recipient.Banned {
		return nil, types.ErrAccountBanned
	}

	if currency == types.CurrencyHVT {
		locked, err := s.transferLockEngaged(ctx)
		if err != nil {
			return nil, err
		}
		if locked {
			return nil, types.ErrTransferDisabled
		}
	}

	unlock := s.locker.LockPair(fromID, toID)
	defer unlock()

	now := time.Now().UTC()
	entryDoc := &model.LedgerEntryDocument{
		EntryID:        uuid.NewString(),
		Type:           types.EntryTransfer,
		AccountID:      fromID,
		CounterpartyID: toID,
		Amount:         amount,
		Currency:       currency,
		Status:         types.StatusCompleted,
		Memo:           memo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = retry.Do(func() error {
		return s.db.TransferBalances(ctx, entryDoc)
	}, s.claimRetryOpts(ctx)...)
	if err != nil {
		if db.IsTransientTxnError(err) {
			return nil, types.ErrTemporarilyUnavailable
		}
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("from", fromID).
		Str("to", toID).
		Int64("amount", amount).
		Stringer("currency", currency).
		Msg("transfer completed")

	return entryDoc, nil
}

// BuyHashPower debits units*price USDT and credits the purchased power. The
// first purchase activates the account for allocation (a later purchase by
// a swept-inactive account does not: only a claim reactivates); the
// referrer, if any, earns a fraction of the units as bonus power.
func (s *Service) BuyHashPower(ctx context.Context, accountID string, units int64) (*model.AccountDocument, error) {
	if units <= 0 {
		return nil, types.ErrInvalidAmount
	}
	accountDoc, err := s.getOperableAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	cost := units * s.cfg.Gateway.HashPowerPrice

	var referrerID string
	var referralBonus int64
	if accountDoc.ReferredBy != "" {
		referrerID = accountDoc.ReferredBy
		referralBonus = s.cfg.Gateway.ReferralHashPowerRateDec().MulInt64(units).TruncateInt64()
	}

	err = retry.Do(func() error {
		return s.db.PurchaseHashPower(ctx, accountID, cost, units, referrerID, referralBonus, time.Now().UTC())
	}, s.claimRetryOpts(ctx)...)
	if err != nil {
		if db.IsTransientTxnError(err) {
			return nil, types.ErrTemporarilyUnavailable
		}
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("account_id", accountID).
		Int64("units", units).
		Int64("cost", cost).
		Int64("referral_bonus", referralBonus).
		Msg("hash power purchased")

	return s.db.GetAccount(ctx, accountID)
}

// transferLockEngaged reports whether issued supply crossed the lock
// threshold.
func (s *Service) transferLockEngaged(ctx context.Context) (bool, error) {
	stats, err := s.db.CalculateNetworkStats(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to calculate network stats: %w", err)
	}

	threshold := s.cfg.Gateway.TransferLockThresholdDec().
		MulInt64(s.cfg.Gateway.MaxSupply).
		TruncateInt64()

	return stats.CirculatingSupply >= threshold, nil
}
