package storage

import (
	"context"
	"sync"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/csvfile"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Storage owns the transaction ledger and serializes access to it.
// Reads share the lock; appends and writers hold it exclusively.
type Storage struct {
	mu           sync.RWMutex
	Transactions csvfile.ITransactionLedger
}

// New wraps an existing ledger implementation.
func New(ledger csvfile.ITransactionLedger) *Storage {
	return &Storage{Transactions: ledger}
}

// NewStorage builds a file-backed Storage from the environment config.
func NewStorage(env *config.Config) *Storage {
	return New(csvfile.NewTransactionLedger(env.LedgerFile))
}

// Initialize ensures the backing ledger exists. Safe to call on every startup.
func (s *Storage) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Transactions.Initialize(ctx)
}

// Append validates and writes a single transaction.
func (s *Storage) Append(ctx context.Context, create *transaction.TransactionCreate) (transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Transactions.Append(ctx, create)
}

// Write returns a Writer holding the exclusive lock until Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return newWriter(s), nil
}
