package model

import "time"

const ActivityRecordCollection = "activity_records"

// ActivityRecordDocument gates allocation eligibility. One record per
// account, keyed by account id.
type ActivityRecordDocument struct {
	AccountID    string    `bson:"_id"`
	LastClaimAt  time.Time `bson:"last_claim_at"`
	TotalClaims  int64     `bson:"total_claims"`
	MissedClaims int64     `bson:"missed_claims"`
	Active       bool      `bson:"active"`
}
