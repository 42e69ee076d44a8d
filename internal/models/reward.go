package models

import "time"

type RewardKind string

const (
	RewardModuleCompletion RewardKind = "module_completion"
	RewardMysteryBox       RewardKind = "mystery_box"
	RewardDailyChallenge   RewardKind = "daily_challenge"
	RewardAchievement      RewardKind = "achievement"
)

type RewardStatus string

const (
	RewardStatusPending   RewardStatus = "pending"
	RewardStatusConfirmed RewardStatus = "confirmed"
	RewardStatusFailed    RewardStatus = "failed"
)

// RewardRecord is an append-only log entry for a token transfer attempt.
// Amounts are in MIST (1 SUI = 1e9 MIST).
type RewardRecord struct {
	ID         string       `bson:"_id" json:"id"`
	Wallet     string       `bson:"wallet" json:"wallet"`
	AmountMist uint64       `bson:"amount_mist" json:"amount_mist"`
	Kind       RewardKind   `bson:"kind" json:"kind"`
	TxDigest   string       `bson:"tx_digest,omitempty" json:"tx_digest,omitempty"`
	Status     RewardStatus `bson:"status" json:"status"`
	Message    string       `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
}

// TransferResult is the caller-facing outcome of a token transfer. Chain
// failures surface here as success=false, never as a panic.
type TransferResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TxDigest string `json:"tx_digest,omitempty"`
}
