package storage

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Reader is the read-only view of Storage handed to query code.
type Reader interface {
	ReadAll(ctx context.Context) ([]transaction.Transaction, error)
}

var _ Reader = (*Storage)(nil)

// ReadAll returns the whole ledger in file order under the shared lock.
func (s *Storage) ReadAll(ctx context.Context) ([]transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Transactions.ReadAll(ctx)
}
