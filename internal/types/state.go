package types

// Enum values for ledger entry status
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusApproved  EntryStatus = "APPROVED"
	StatusRejected  EntryStatus = "REJECTED"
	StatusCompleted EntryStatus = "COMPLETED"
)

func (s EntryStatus) String() string {
	return string(s)
}

// Enum values for ledger entry type
type EntryType string

const (
	EntryDeposit    EntryType = "DEPOSIT"
	EntryWithdrawal EntryType = "WITHDRAWAL"
	EntryTransfer   EntryType = "TRANSFER"
	EntryReferral   EntryType = "REFERRAL"
)

func (t EntryType) String() string {
	return string(t)
}

// Enum values for stake status
type StakeStatus string

const (
	StakeActive   StakeStatus = "ACTIVE"
	StakeReleased StakeStatus = "RELEASED"
)

func (s StakeStatus) String() string {
	return string(s)
}

// QualifiedStatesForApproval returns the states a deposit entry may be in
// when it is approved. Entry status transitions are one-directional: an
// entry that already left PENDING never moves again.
func QualifiedStatesForApproval() []EntryStatus {
	return []EntryStatus{StatusPending}
}

// QualifiedStatesForRejection returns the states a pending entry may be in
// when it is rejected.
func QualifiedStatesForRejection() []EntryStatus {
	return []EntryStatus{StatusPending}
}

// QualifiedStatesForCompletion returns the states a withdrawal entry may be
// in when its settlement completes.
func QualifiedStatesForCompletion() []EntryStatus {
	return []EntryStatus{StatusPending, StatusApproved}
}

// QualifiedStatesForStakeRelease returns the stake states from which a stake
// can be released back to the liquid balance.
func QualifiedStatesForStakeRelease() []StakeStatus {
	return []StakeStatus{StakeActive}
}
