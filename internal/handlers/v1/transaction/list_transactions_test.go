package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/query"
	txmodel "github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, filter query.Filter) ([]txmodel.Transaction, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]txmodel.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func record(t *testing.T, date, typ, category, amount string) txmodel.Transaction {
	t.Helper()
	tx, err := (&txmodel.TransactionCreate{Date: date, Type: typ, Category: category, Amount: amount}).Parse()
	require.NoError(t, err)
	return tx
}

func TestHTTP_ListTransactions_WithFilter(t *testing.T) {
	svc := new(mockTransactionLister)
	svc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f query.Filter) bool {
		return f.Start != nil && f.Start.Format(txmodel.DateLayout) == "01-01-2025" &&
			f.End != nil && f.End.Format(txmodel.DateLayout) == "31-01-2025" &&
			f.Type == query.All
	})).Return([]txmodel.Transaction{
		record(t, "01-01-2025", "Income", "Salary", "50000"),
		record(t, "05-01-2025", "Expense", "Rent", "15000.50"),
	}, nil)

	resp := newListTestAPI(t, svc).Post("/v1/transaction/list", common.FilterBody{
		StartDate: "01-01-2025",
		EndDate:   "31-01-2025",
		Type:      "All",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "Salary", body.Transactions[0].Category)
	assert.Equal(t, "Rent", body.Transactions[1].Category)
	assert.Equal(t, 2, body.Totals.Count)
	assert.True(t, decimal.RequireFromString(body.Totals.Net).Equal(decimal.RequireFromString("34999.5")))
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_NoFilter(t *testing.T) {
	svc := new(mockTransactionLister)
	svc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f query.Filter) bool {
		return f.IsZero()
	})).Return([]txmodel.Transaction(nil), nil)

	resp := newListTestAPI(t, svc).Post("/v1/transaction/list", common.FilterBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Equal(t, 0, body.Totals.Count)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_BadDates(t *testing.T) {
	for name, body := range map[string]common.FilterBody{
		"bad format":     {StartDate: "2025-01-01"},
		"inverted range": {StartDate: "31-01-2025", EndDate: "01-01-2025"},
	} {
		t.Run(name, func(t *testing.T) {
			svc := new(mockTransactionLister)

			resp := newListTestAPI(t, svc).Post("/v1/transaction/list", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			svc.AssertNotCalled(t, "ListTransactions")
		})
	}
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	svc := new(mockTransactionLister)
	svc.On("ListTransactions", mock.Anything, mock.Anything).
		Return([]txmodel.Transaction(nil), &txmodel.CorruptRecordError{Line: 2, Reason: "bad"})

	resp := newListTestAPI(t, svc).Post("/v1/transaction/list", common.FilterBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_UnknownType(t *testing.T) {
	svc := new(mockTransactionLister)

	resp := newListTestAPI(t, svc).Post("/v1/transaction/list", common.FilterBody{Type: "Transfer"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "ListTransactions")
}
