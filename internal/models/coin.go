package models

import "time"

// CoinEntry is one signed movement in the append-only coin ledger.
// A user's balance is derived by summing entries, never stored.
type CoinEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    int64     `json:"amount"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}
