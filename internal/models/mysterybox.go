package models

// BoxType defines a mystery box tier with its reward ranges. Token amounts
// are in MIST.
type BoxType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	XPMin     int64   `json:"xp_min"`
	XPMax     int64   `json:"xp_max"`
	TokenMin  uint64  `json:"token_min"`
	TokenMax  uint64  `json:"token_max"`
	TokenOdds float64 `json:"token_odds"` // probability a token reward drops at all
}

var BoxTypes = map[string]BoxType{
	"common":    {ID: "common", Name: "Common Box", XPMin: 25, XPMax: 100, TokenMin: 0, TokenMax: 0, TokenOdds: 0},
	"rare":      {ID: "rare", Name: "Rare Box", XPMin: 100, XPMax: 300, TokenMin: 10_000_000, TokenMax: 50_000_000, TokenOdds: 0.25},
	"epic":      {ID: "epic", Name: "Epic Box", XPMin: 300, XPMax: 800, TokenMin: 50_000_000, TokenMax: 200_000_000, TokenOdds: 0.5},
	"legendary": {ID: "legendary", Name: "Legendary Box", XPMin: 800, XPMax: 2000, TokenMin: 200_000_000, TokenMax: 1_000_000_000, TokenOdds: 0.9},
}

// BoxResult is the outcome of opening a box.
type BoxResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BoxType   string `json:"box_type,omitempty"`
	XPAwarded int64  `json:"xp_awarded,omitempty"`
	TokenMist uint64 `json:"token_mist,omitempty"`
	TxDigest  string `json:"tx_digest,omitempty"`
}
