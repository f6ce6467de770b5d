package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/query"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) SummarizeByCategory(ctx context.Context, filter query.Filter) ([]query.CategoryTotal, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).([]query.CategoryTotal)
	return totals, args.Error(1)
}

func (m *mockSummarizer) SummarizeByMonth(ctx context.Context, filter query.Filter) ([]query.MonthTypeTotal, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).([]query.MonthTypeTotal)
	return totals, args.Error(1)
}

func newTestAPI(t *testing.T, svc summarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_SummaryByCategory(t *testing.T) {
	svc := new(mockSummarizer)
	svc.On("SummarizeByCategory", mock.Anything, mock.MatchedBy(func(f query.Filter) bool {
		return f.Type == query.Expense && f.Start == nil
	})).Return([]query.CategoryTotal{
		{Category: "Rent", Total: decimal.NewFromInt(15000)},
		{Category: "Groceries", Total: decimal.RequireFromString("3000.25")},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/summary/category", common.FilterBody{Type: "Expense"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Categories []CategoryTotal `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []CategoryTotal{
		{Category: "Rent", Total: "15000"},
		{Category: "Groceries", Total: "3000.25"},
	}, body.Categories)
	svc.AssertExpectations(t)
}

func TestHTTP_SummaryByMonth(t *testing.T) {
	svc := new(mockSummarizer)
	svc.On("SummarizeByMonth", mock.Anything, mock.Anything).Return([]query.MonthTypeTotal{
		{Month: "Jan 2025", Type: transaction.TypeIncome, Total: decimal.NewFromInt(50000)},
		{Month: "Jan 2025", Type: transaction.TypeExpense, Total: decimal.NewFromInt(15000)},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/summary/monthly", common.FilterBody{StartDate: "01-01-2025"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Months []MonthTypeTotal `json:"months"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Months, 2)
	assert.Equal(t, MonthTypeTotal{Month: "Jan 2025", Type: "Income", Total: "50000"}, body.Months[0])
	svc.AssertExpectations(t)
}

func TestHTTP_Summary_BadFilter(t *testing.T) {
	svc := new(mockSummarizer)

	resp := newTestAPI(t, svc).Post("/v1/summary/category", common.FilterBody{EndDate: "31/01/2025"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "SummarizeByCategory")
}

func TestHTTP_Summary_ServiceError(t *testing.T) {
	svc := new(mockSummarizer)
	svc.On("SummarizeByMonth", mock.Anything, mock.Anything).Return(nil, errors.New("corrupt ledger"))

	resp := newTestAPI(t, svc).Post("/v1/summary/monthly", common.FilterBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	svc.AssertExpectations(t)
}
