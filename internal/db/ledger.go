package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/types"
)

func (db *Database) InsertLedgerEntry(ctx context.Context, entryDoc *model.LedgerEntryDocument) error {
	_, err := db.collection(model.LedgerEntryCollection).InsertOne(ctx, entryDoc)
	if err != nil {
		return asDuplicateKeyError(err, entryDoc.TxHash, "ledger entry with this tx hash already exists")
	}

	return nil
}

func (db *Database) GetLedgerEntry(ctx context.Context, entryID string) (*model.LedgerEntryDocument, error) {
	res := db.collection(model.LedgerEntryCollection).FindOne(ctx, bson.M{"entry_id": entryID})

	var entryDoc model.LedgerEntryDocument
	if err := res.Decode(&entryDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     entryID,
				Message: "ledger entry not found",
			}
		}
		return nil, err
	}

	return &entryDoc, nil
}

// updateEntryStatus moves an entry to newStatus only from a qualified
// previous status. The conditional filter is what makes every transition
// exactly-once: a concurrent or repeated call matches no document and gets
// a NotFoundError.
func (db *Database) updateEntryStatus(
	ctx context.Context,
	entryID string,
	qualifiedStates []types.EntryStatus,
	newStatus types.EntryStatus,
	extraFields bson.M,
	now time.Time,
) (*model.LedgerEntryDocument, error) {
	qualifiedStrs := make([]string, len(qualifiedStates))
	for i, state := range qualifiedStates {
		qualifiedStrs[i] = state.String()
	}

	filter := bson.M{
		"entry_id": entryID,
		"status":   bson.M{"$in": qualifiedStrs},
	}

	updateFields := bson.M{
		"status":     newStatus.String(),
		"updated_at": now,
	}
	for k, v := range extraFields {
		updateFields[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := db.collection(model.LedgerEntryCollection).
		FindOneAndUpdate(ctx, filter, bson.M{"$set": updateFields}, opts)

	var entryDoc model.LedgerEntryDocument
	if err := res.Decode(&entryDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     entryID,
				Message: "ledger entry not found or status not qualified for transition",
			}
		}
		return nil, err
	}

	return &entryDoc, nil
}

// ApproveDeposit transitions a pending deposit to APPROVED and credits its
// amount, plus an optional referral commission to the referrer, inside one
// transaction. The PENDING->APPROVED guard makes the credit exactly-once.
func (db *Database) ApproveDeposit(
	ctx context.Context,
	entryID string,
	referralEntry *model.LedgerEntryDocument,
	now time.Time,
) (*model.LedgerEntryDocument, error) {
	res, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		entryDoc, err := db.updateEntryStatus(
			sessCtx, entryID, types.QualifiedStatesForApproval(), types.StatusApproved, nil, now,
		)
		if err != nil {
			return nil, err
		}

		if err := db.creditBalance(sessCtx, entryDoc.AccountID, balanceField(entryDoc.Currency), entryDoc.Amount); err != nil {
			return nil, err
		}

		if referralEntry != nil {
			if err := db.creditBalance(
				sessCtx, referralEntry.AccountID, balanceField(referralEntry.Currency), referralEntry.Amount,
			); err != nil {
				return nil, err
			}
			if _, err := db.collection(model.LedgerEntryCollection).InsertOne(sessCtx, referralEntry); err != nil {
				return nil, err
			}
		}

		return entryDoc, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*model.LedgerEntryDocument), nil
}

// RejectDeposit transitions a pending deposit to REJECTED. No balance was
// touched at request time, so nothing is refunded.
func (db *Database) RejectDeposit(
	ctx context.Context, entryID, reason string, now time.Time,
) (*model.LedgerEntryDocument, error) {
	return db.updateEntryStatus(
		ctx,
		entryID,
		types.QualifiedStatesForRejection(),
		types.StatusRejected,
		bson.M{"reason": reason},
		now,
	)
}

// ReserveWithdrawal debits amount+fee and inserts the pending entry in one
// transaction (reserve-then-settle). Concurrent withdrawals that together
// exceed the balance cannot both pass the conditional debit.
func (db *Database) ReserveWithdrawal(ctx context.Context, entryDoc *model.LedgerEntryDocument) error {
	_, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		total := entryDoc.Amount + entryDoc.Fee
		if err := db.debitBalance(sessCtx, entryDoc.AccountID, balanceField(entryDoc.Currency), total); err != nil {
			return nil, err
		}

		if _, err := db.collection(model.LedgerEntryCollection).InsertOne(sessCtx, entryDoc); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

// CompleteWithdrawal settles a reserved withdrawal. The balance was debited
// at reservation time; only the status moves.
func (db *Database) CompleteWithdrawal(
	ctx context.Context, entryID string, now time.Time,
) (*model.LedgerEntryDocument, error) {
	return db.updateEntryStatus(
		ctx, entryID, types.QualifiedStatesForCompletion(), types.StatusCompleted, nil, now,
	)
}

// RejectWithdrawal refunds the reserved amount+fee and transitions the entry
// to REJECTED inside one transaction.
func (db *Database) RejectWithdrawal(
	ctx context.Context, entryID, reason string, now time.Time,
) (*model.LedgerEntryDocument, error) {
	res, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		entryDoc, err := db.updateEntryStatus(
			sessCtx,
			entryID,
			types.QualifiedStatesForRejection(),
			types.StatusRejected,
			bson.M{"reason": reason},
			now,
		)
		if err != nil {
			return nil, err
		}

		total := entryDoc.Amount + entryDoc.Fee
		if err := db.creditBalance(sessCtx, entryDoc.AccountID, balanceField(entryDoc.Currency), total); err != nil {
			return nil, err
		}

		return entryDoc, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*model.LedgerEntryDocument), nil
}

// GetLastCompletedWithdrawal returns the most recently completed withdrawal
// of the account, or a NotFoundError when there is none. Used for the
// cooldown check.
func (db *Database) GetLastCompletedWithdrawal(
	ctx context.Context, accountID string,
) (*model.LedgerEntryDocument, error) {
	filter := bson.M{
		"account_id": accountID,
		"type":       types.EntryWithdrawal.String(),
		"status":     types.StatusCompleted.String(),
	}
	opts := options.FindOne().SetSort(bson.M{"updated_at": -1})

	res := db.collection(model.LedgerEntryCollection).FindOne(ctx, filter, opts)

	var entryDoc model.LedgerEntryDocument
	if err := res.Decode(&entryDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     accountID,
				Message: "no completed withdrawal for account",
			}
		}
		return nil, err
	}

	return &entryDoc, nil
}

// TransferBalances debits the sender, credits the receiver and records the
// completed entry in a single transaction: both balances change or neither
// does.
func (db *Database) TransferBalances(ctx context.Context, entryDoc *model.LedgerEntryDocument) error {
	_, err := db.withTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		field := balanceField(entryDoc.Currency)

		if err := db.debitBalance(sessCtx, entryDoc.AccountID, field, entryDoc.Amount); err != nil {
			return nil, err
		}
		if err := db.creditBalance(sessCtx, entryDoc.CounterpartyID, field, entryDoc.Amount); err != nil {
			return nil, err
		}
		if _, err := db.collection(model.LedgerEntryCollection).InsertOne(sessCtx, entryDoc); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}
