package models

import "time"

// MintRequest carries the five scalar arguments of the deployed Move mint
// entry function.
type MintRequest struct {
	Recipient   string `json:"recipient" binding:"required"`
	ModuleID    uint64 `json:"module_id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	// When false the transaction is only constructed and returned, not sent.
	Submit bool `json:"submit"`
}

type NFTStatus string

const (
	NFTStatusBuilt     NFTStatus = "built"
	NFTStatusSubmitted NFTStatus = "submitted"
	NFTStatusFailed    NFTStatus = "failed"
)

type NFTRecord struct {
	ID          string    `bson:"_id" json:"id"`
	Wallet      string    `bson:"wallet" json:"wallet"`
	ModuleID    uint64    `bson:"module_id" json:"module_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	TxBytes     string    `bson:"tx_bytes,omitempty" json:"tx_bytes,omitempty"`
	TxDigest    string    `bson:"tx_digest,omitempty" json:"tx_digest,omitempty"`
	Status      NFTStatus `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
