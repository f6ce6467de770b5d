package query

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// MonthLayout formats month labels, e.g. "Jan 2025".
const MonthLayout = "Jan 2006"

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthTypeTotal is the summed amount of one type within one month.
type MonthTypeTotal struct {
	Month string
	Type  transaction.TransactionType
	Total decimal.Decimal
}

// MonthlyComparison pairs income and expense for one month. Missing sides are zero.
type MonthlyComparison struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Totals sums a set of transactions by type.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

// MonthLabel returns the "Jan 2025" label of the month containing t.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLayout)
}

// AggregateByCategory sums amounts per category in first-seen order.
// Categories absent from records are absent from the result.
func AggregateByCategory(records []transaction.Transaction) []CategoryTotal {
	index := map[string]int{}
	totals := []CategoryTotal{}

	for _, tx := range records {
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{Category: tx.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}

	return totals
}

type monthTypeKey struct {
	month string
	t     transaction.TransactionType
}

// AggregateByMonthAndType sums amounts per (month, type) pair in first-seen order.
// Pairs without records are absent, not zero.
func AggregateByMonthAndType(records []transaction.Transaction) []MonthTypeTotal {
	index := map[monthTypeKey]int{}
	totals := []MonthTypeTotal{}

	for _, tx := range records {
		key := monthTypeKey{month: MonthLabel(tx.Date), t: tx.Type}
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, MonthTypeTotal{Month: key.month, Type: key.t, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}

	return totals
}

// CompareMonthly returns one entry per month present in records, ordered by
// calendar month, with the type missing in a month filled with zero.
func CompareMonthly(records []transaction.Transaction) []MonthlyComparison {
	byMonth := map[time.Time]*MonthlyComparison{}
	months := []time.Time{}

	for _, tx := range records {
		month := time.Date(tx.Date.Year(), tx.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		entry, ok := byMonth[month]
		if !ok {
			entry = &MonthlyComparison{Month: MonthLabel(month), Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[month] = entry
			months = append(months, month)
		}
		switch tx.Type {
		case transaction.TypeIncome:
			entry.Income = entry.Income.Add(tx.Amount)
		case transaction.TypeExpense:
			entry.Expense = entry.Expense.Add(tx.Amount)
		}
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	comparison := make([]MonthlyComparison, len(months))
	for i, month := range months {
		comparison[i] = *byMonth[month]
	}
	return comparison
}

// Sum totals a set of transactions by type.
func Sum(records []transaction.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero, Count: len(records)}
	for _, tx := range records {
		switch tx.Type {
		case transaction.TypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case transaction.TypeExpense:
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}
