package store

import (
	"context"
	"time"

	"wayfarer/internal/models"
)

// ListCoinEntries возвращает журнал монет в хронологическом порядке
func (s *Store) ListCoinEntries(ctx context.Context) ([]models.CoinEntry, error) {
	return s.coins.list(ctx)
}

// AddCoins appends a signed ledger entry. Negative amounts are debits;
// the ledger itself never rejects them.
func (s *Store) AddCoins(ctx context.Context, userID string, amount int64, reason string) error {
	entry := models.CoinEntry{
		ID:        models.NewID("coin"),
		UserID:    userID,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	return s.coins.append(ctx, entry)
}

// UserCoinBalance sums all ledger entries for the user. The balance is
// derived on every call; no running total is persisted.
func (s *Store) UserCoinBalance(ctx context.Context, userID string) (int64, error) {
	entries, err := s.coins.list(ctx)
	if err != nil {
		return 0, err
	}

	var balance int64
	for _, entry := range entries {
		if entry.UserID == userID {
			balance += entry.Amount
		}
	}
	return balance, nil
}
