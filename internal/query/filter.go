// Package query holds side-effect free filters and aggregations over
// transactions that are already in memory. No function mutates its input.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// TypeFilter selects transactions by type; All (or the empty value) matches every type.
type TypeFilter string

const (
	All     TypeFilter = "All"
	Income  TypeFilter = TypeFilter(transaction.TypeIncome)
	Expense TypeFilter = TypeFilter(transaction.TypeExpense)
)

// ParseTypeFilter accepts All, Income or Expense in any case. Empty means All.
func ParseTypeFilter(s string) (TypeFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(All)) {
		return All, nil
	}
	t, ok := transaction.ParseType(s)
	if !ok {
		return "", fmt.Errorf("invalid type filter %q: must be All, Income or Expense", s)
	}
	return TypeFilter(t), nil
}

func (f TypeFilter) matches(t transaction.TransactionType) bool {
	return f == "" || f == All || TypeFilter(t) == f
}

// Filter bounds a query by inclusive calendar dates and type.
// A nil bound leaves that side of the range open.
type Filter struct {
	Start *time.Time
	End   *time.Time
	Type  TypeFilter
}

// NewFilter parses DD-MM-YYYY bounds and a type filter. Empty strings mean no constraint.
func NewFilter(start, end, t string) (Filter, error) {
	var f Filter

	if strings.TrimSpace(start) != "" {
		d, err := transaction.ParseDate(start)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid start date %q: must be DD-MM-YYYY", start)
		}
		f.Start = &d
	}

	if strings.TrimSpace(end) != "" {
		d, err := transaction.ParseDate(end)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid end date %q: must be DD-MM-YYYY", end)
		}
		f.End = &d
	}

	if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
		return Filter{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}

	typeFilter, err := ParseTypeFilter(t)
	if err != nil {
		return Filter{}, err
	}
	f.Type = typeFilter

	return f, nil
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.Start == nil && f.End == nil && f.Type.matchesAll()
}

func (f TypeFilter) matchesAll() bool {
	return f == "" || f == All
}

// Matches reports whether tx satisfies the date range and type.
func (f Filter) Matches(tx transaction.Transaction) bool {
	day := calendarDay(tx.Date)
	if f.Start != nil && day.Before(calendarDay(*f.Start)) {
		return false
	}
	if f.End != nil && day.After(calendarDay(*f.End)) {
		return false
	}
	return f.Type.matches(tx.Type)
}

// FilterByDateTypeRange keeps the records matching f, in input order.
func FilterByDateTypeRange(records []transaction.Transaction, f Filter) []transaction.Transaction {
	filtered := make([]transaction.Transaction, 0, len(records))
	for _, tx := range records {
		if f.Matches(tx) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// calendarDay drops the time of day so comparisons are by year, month and day only.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
