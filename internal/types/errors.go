package types

import "errors"

// Domain errors returned by the service layer. Callers match on them with
// errors.Is; they are expected outcomes, not failures of the process.
var (
	// ErrInsufficientBalance is returned when a debit would take an account
	// balance below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrCooldownActive is returned when a withdrawal is requested before the
	// cooldown window since the previous withdrawal has elapsed.
	ErrCooldownActive = errors.New("withdrawal cooldown active")

	// ErrNoClaimableRewards is returned by a claim when no unclaimed,
	// non-expired reward rows exist for the account.
	ErrNoClaimableRewards = errors.New("no claimable rewards")

	// ErrTransferDisabled is returned when the global transfer lock is
	// engaged and an external-facing transfer is requested.
	ErrTransferDisabled = errors.New("transfers disabled")

	// ErrDuplicateTxHash is returned when a deposit is submitted with a
	// transaction hash that was already used by any account.
	ErrDuplicateTxHash = errors.New("duplicate transaction hash")

	// ErrAccountFrozen blocks all mutating operations on a frozen account.
	ErrAccountFrozen = errors.New("account frozen")

	// ErrAccountBanned blocks all mutating operations on a banned account.
	ErrAccountBanned = errors.New("account banned")

	// ErrInvalidAmount is returned when a request names a zero, negative, or
	// otherwise nonsensical amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTemporarilyUnavailable is surfaced after bounded internal retries
	// of a storage conflict are exhausted. The caller may retry.
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")
)
