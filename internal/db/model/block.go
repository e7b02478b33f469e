package model

import "time"

const BlockCollection = "blocks"

// BlockDocument is immutable once inserted. Height doubles as the primary
// key, which makes duplicate heights impossible at the storage level.
type BlockDocument struct {
	Height int64 `bson:"_id" json:"height"`
	// Reward in micro-units of HVT.
	Reward int64 `bson:"reward" json:"reward"`
	// TotalHashPower is the snapshot of active network power at mining time.
	TotalHashPower int64     `bson:"total_hash_power" json:"total_hash_power"`
	MinedAt        time.Time `bson:"mined_at" json:"mined_at"`
}

func NewBlockDocument(height, reward, totalHashPower int64, minedAt time.Time) *BlockDocument {
	return &BlockDocument{
		Height:         height,
		Reward:         reward,
		TotalHashPower: totalHashPower,
		MinedAt:        minedAt,
	}
}
