package operator

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/csvfile"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newFileDelegator(t *testing.T, workers int) (*OperatorDelegator, *storage.Storage) {
	t.Helper()
	store := storage.New(csvfile.NewTransactionLedger(filepath.Join(t.TempDir(), "transactions.csv")))
	require.NoError(t, store.Initialize(context.Background()))

	d := NewOperatorDelegator(store, workers, quietLogger())
	d.Start()
	t.Cleanup(d.Stop)
	return d, store
}

func TestProcess_CreateTransactionCommits(t *testing.T) {
	d, store := newFileDelegator(t, 1)
	action := &actions.CreateTransaction{
		Create: transaction.TransactionCreate{Date: "01-01-2025", Type: "Income", Category: "Salary", Amount: "50000"},
	}

	require.NoError(t, d.Process(context.Background(), action))

	assert.Equal(t, "Salary", action.Result.Category)
	txs, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Equal(action.Result))
}

func TestProcess_ValidationErrorRollsBack(t *testing.T) {
	d, store := newFileDelegator(t, 1)
	action := &actions.CreateTransaction{
		Create: transaction.TransactionCreate{Date: "01-01-2025", Type: "Income", Category: "Salary", Amount: "lots"},
	}

	err := d.Process(context.Background(), action)

	var validationErr *transaction.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, transaction.InvalidAmount, validationErr.Kind)
	txs, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestProcess_CommitErrorIsReturned(t *testing.T) {
	mockLedger := csvfile.NewMockITransactionLedger(t)
	commitErr := errors.New("disk full")
	mockLedger.EXPECT().AppendAll(mock.Anything, mock.Anything).Return(commitErr)

	d := NewOperatorDelegator(storage.New(mockLedger), 1, quietLogger())
	d.Start()
	defer d.Stop()

	err := d.Process(context.Background(), &actions.CreateTransaction{
		Create: transaction.TransactionCreate{Date: "01-01-2025", Type: "Expense", Category: "Rent", Amount: "10"},
	})

	assert.ErrorIs(t, err, commitErr)
}

func TestProcess_ConcurrentCallersAllLand(t *testing.T) {
	d, store := newFileDelegator(t, 3)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), &actions.CreateTransaction{
				Create: transaction.TransactionCreate{Date: "02-02-2025", Type: "Expense", Category: "Food", Amount: "1.25"},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	txs, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, txs, 25)
}

func TestProcess_CancelledContext(t *testing.T) {
	d, store := newFileDelegator(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateTransaction{
		Create: transaction.TransactionCreate{Date: "01-01-2025", Type: "Income", Category: "Salary", Amount: "1"},
	})

	assert.ErrorIs(t, err, context.Canceled)
	d.Stop()
	txs, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestProcess_AfterStop(t *testing.T) {
	d, _ := newFileDelegator(t, 1)
	d.Stop()

	err := d.Process(context.Background(), &actions.CreateTransaction{})

	assert.ErrorIs(t, err, ErrStopped)
}
