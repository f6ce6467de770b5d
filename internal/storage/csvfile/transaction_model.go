package csvfile

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// ITransactionLedger defines the append-only transaction log operations.
//
//go:generate mockery --name ITransactionLedger --output mock_ITransactionLedger.go
type ITransactionLedger interface {
	Initialize(ctx context.Context) error
	ReadAll(ctx context.Context) ([]transaction.Transaction, error)
	Append(ctx context.Context, create *transaction.TransactionCreate) (transaction.Transaction, error)
	AppendAll(ctx context.Context, txs []transaction.Transaction) error
}
