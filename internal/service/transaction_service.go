package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/query"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// Initialize creates the ledger if it does not exist yet.
func (s *TransactionService) Initialize(ctx context.Context) error {
	return s.storage.Initialize(ctx)
}

// CreateTransaction validates and appends a transaction, returning the stored record.
func (s *TransactionService) CreateTransaction(ctx context.Context, create transaction.TransactionCreate) (transaction.Transaction, error) {
	return s.storage.Append(ctx, &create)
}

// ListTransactions returns the records matching filter in ledger order.
func (s *TransactionService) ListTransactions(ctx context.Context, filter query.Filter) ([]transaction.Transaction, error) {
	records, err := s.storage.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterByDateTypeRange(records, filter), nil
}

// SummarizeByCategory totals the filtered set per category.
func (s *TransactionService) SummarizeByCategory(ctx context.Context, filter query.Filter) ([]query.CategoryTotal, error) {
	records, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return query.AggregateByCategory(records), nil
}

// SummarizeByMonth totals the filtered set per month and type.
func (s *TransactionService) SummarizeByMonth(ctx context.Context, filter query.Filter) ([]query.MonthTypeTotal, error) {
	records, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return query.AggregateByMonthAndType(records), nil
}

// CompareMonthly pairs income and expense per month for the filtered set,
// oldest month first.
func (s *TransactionService) CompareMonthly(ctx context.Context, filter query.Filter) ([]query.MonthlyComparison, error) {
	records, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return query.CompareMonthly(records), nil
}

// Totals sums income, expense and net over the filtered set.
func (s *TransactionService) Totals(ctx context.Context, filter query.Filter) (query.Totals, error) {
	records, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return query.Totals{}, err
	}
	return query.Sum(records), nil
}

// GenerateReport writes the filtered set to path in the given format and
// returns the number of records written.
func (s *TransactionService) GenerateReport(ctx context.Context, filter query.Filter, format ReportFormat, path string) (int, error) {
	records, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return 0, err
	}

	switch format {
	case ReportFormatPDF:
		err = report.GenerateTabularDocument(records, path)
	case ReportFormatExcel:
		err = report.GenerateSpreadsheet(records, path)
	default:
		return 0, fmt.Errorf("unknown report format %q", format)
	}
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// RenderChart draws a chart of the filtered set to path.
func (s *TransactionService) RenderChart(ctx context.Context, filter query.Filter, kind ChartKind, path string) error {
	records, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return err
	}

	switch kind {
	case ChartPie:
		return report.RenderCategoryPie(query.AggregateByCategory(records), path)
	case ChartBar:
		return report.RenderMonthlyBars(query.CompareMonthly(records), path)
	}
	return fmt.Errorf("unknown chart kind %q", kind)
}
