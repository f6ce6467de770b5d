package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CreateTransaction validates and stages one ledger record. Result holds the
// parsed record once Perform succeeds.
type CreateTransaction struct {
	Create transaction.TransactionCreate
	Result transaction.Transaction
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	tx, err := writer.Insert(ctx, &t.Create)
	if err != nil {
		return err
	}

	t.Result = tx
	return nil
}
