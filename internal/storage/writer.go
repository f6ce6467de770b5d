package storage

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

var ErrWriterClosed = errors.New("storage writer already committed or rolled back")

// Writer stages validated transactions and appends them in one write on Commit.
// Nothing reaches the ledger if the writer is rolled back.
type Writer struct {
	storage *Storage
	pending []transaction.Transaction
	closed  bool
}

func newWriter(s *Storage) *Writer {
	return &Writer{storage: s}
}

// Insert validates create and stages it for the next Commit.
func (w *Writer) Insert(_ context.Context, create *transaction.TransactionCreate) (transaction.Transaction, error) {
	if w.closed {
		return transaction.Transaction{}, ErrWriterClosed
	}
	tx, err := create.Parse()
	if err != nil {
		return transaction.Transaction{}, err
	}
	w.pending = append(w.pending, tx)
	return tx, nil
}

// ReadAll reads the committed ledger. The writer already holds the lock.
func (w *Writer) ReadAll(ctx context.Context) ([]transaction.Transaction, error) {
	if w.closed {
		return nil, ErrWriterClosed
	}
	return w.storage.Transactions.ReadAll(ctx)
}

// Pending returns the number of staged transactions.
func (w *Writer) Pending() int {
	return len(w.pending)
}

func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	defer w.release()
	if len(w.pending) == 0 {
		return nil
	}
	return w.storage.Transactions.AppendAll(context.Background(), w.pending)
}

func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.release()
	return nil
}

func (w *Writer) release() {
	w.closed = true
	w.pending = nil
	w.storage.mu.Unlock()
}
