package query

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

func tx(date string, t transaction.TransactionType, category, amount string) transaction.Transaction {
	d, err := transaction.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return transaction.Transaction{Date: d, Type: t, Category: category, Amount: decimal.RequireFromString(amount)}
}

func exampleRecords() []transaction.Transaction {
	return []transaction.Transaction{
		tx("01-01-2025", transaction.TypeIncome, "Salary", "50000"),
		tx("05-01-2025", transaction.TypeExpense, "Rent", "15000"),
		tx("10-02-2025", transaction.TypeExpense, "Groceries", "3000"),
	}
}

func mustFilter(t *testing.T, start, end, typ string) Filter {
	t.Helper()
	f, err := NewFilter(start, end, typ)
	require.NoError(t, err)
	return f
}

// -- Filter tests --

func TestFilterByDateTypeRange_ExampleScenario(t *testing.T) {
	records := exampleRecords()

	got := FilterByDateTypeRange(records, mustFilter(t, "01-01-2025", "31-01-2025", "All"))

	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(records[0]))
	assert.True(t, got[1].Equal(records[1]))
}

func TestFilterByDateTypeRange_ComparesCalendarDatesNotStrings(t *testing.T) {
	// "15-12-2024" sorts after "01-01-2025" as text but is earlier as a date.
	records := []transaction.Transaction{
		tx("15-12-2024", transaction.TypeExpense, "Gifts", "100"),
		tx("02-01-2025", transaction.TypeExpense, "Food", "20"),
	}

	got := FilterByDateTypeRange(records, mustFilter(t, "01-01-2025", "31-01-2025", ""))

	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Category)
}

func TestFilterByDateTypeRange_TypeOnly(t *testing.T) {
	got := FilterByDateTypeRange(exampleRecords(), mustFilter(t, "", "", "Expense"))

	require.Len(t, got, 2)
	assert.Equal(t, "Rent", got[0].Category)
	assert.Equal(t, "Groceries", got[1].Category)
}

func TestFilterByDateTypeRange_OpenEndedBounds(t *testing.T) {
	records := exampleRecords()

	assert.Len(t, FilterByDateTypeRange(records, mustFilter(t, "05-01-2025", "", "")), 2)
	assert.Len(t, FilterByDateTypeRange(records, mustFilter(t, "", "05-01-2025", "")), 2)
	assert.Len(t, FilterByDateTypeRange(records, Filter{}), 3)
}

func TestFilterByDateTypeRange_DoesNotMutateInput(t *testing.T) {
	records := exampleRecords()
	before := append([]transaction.Transaction(nil), records...)

	_ = FilterByDateTypeRange(records, mustFilter(t, "", "", "Income"))

	assert.Equal(t, before, records)
}

func TestFilterByDateTypeRange_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	categories := []string{"Salary", "Rent", "Food", "Travel"}

	records := make([]transaction.Transaction, 500)
	for i := range records {
		records[i] = transaction.Transaction{
			Date:     base.AddDate(0, 0, rng.Intn(730)),
			Type:     transaction.Types[rng.Intn(2)],
			Category: categories[rng.Intn(len(categories))],
			Amount:   decimal.New(rng.Int63n(1000000), -2),
		}
	}

	for i := 0; i < 50; i++ {
		start := base.AddDate(0, 0, rng.Intn(730))
		end := start.AddDate(0, 0, rng.Intn(200))
		typeFilter := []TypeFilter{All, Income, Expense}[rng.Intn(3)]
		f := Filter{Start: &start, End: &end, Type: typeFilter}

		got := FilterByDateTypeRange(records, f)

		var want []transaction.Transaction
		for _, r := range records {
			inRange := !r.Date.Before(start) && !r.Date.After(end)
			typeOK := typeFilter == All || TypeFilter(r.Type) == typeFilter
			if inRange && typeOK {
				want = append(want, r)
			}
		}

		require.Len(t, got, len(want))
		for j := range want {
			assert.True(t, want[j].Equal(got[j]))
		}
	}
}

func TestNewFilter_Errors(t *testing.T) {
	_, err := NewFilter("2025-01-01", "", "")
	assert.ErrorContains(t, err, "invalid start date")

	_, err = NewFilter("", "31/01/2025", "")
	assert.ErrorContains(t, err, "invalid end date")

	_, err = NewFilter("31-01-2025", "01-01-2025", "")
	assert.ErrorContains(t, err, "before start date")

	_, err = NewFilter("", "", "Transfers")
	assert.ErrorContains(t, err, "invalid type filter")
}

func TestParseTypeFilter(t *testing.T) {
	for in, want := range map[string]TypeFilter{"": All, "all": All, "income": Income, " Expense ": Expense} {
		got, err := ParseTypeFilter(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Type: Income}.IsZero())
}

// -- Aggregation tests --

func TestAggregateByCategory_FirstSeenOrder(t *testing.T) {
	records := append(exampleRecords(), tx("12-02-2025", transaction.TypeExpense, "Rent", "15000"))

	got := AggregateByCategory(records)

	require.Len(t, got, 3)
	assert.Equal(t, "Salary", got[0].Category)
	assert.Equal(t, "Rent", got[1].Category)
	assert.True(t, got[1].Total.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, "Groceries", got[2].Category)
}

func TestAggregateByCategory_SumMatchesInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	records := make([]transaction.Transaction, 200)
	want := decimal.Zero
	for i := range records {
		amount := decimal.New(rng.Int63n(100000), -2)
		records[i] = transaction.Transaction{
			Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Type:     transaction.TypeExpense,
			Category: string(rune('A' + rng.Intn(10))),
			Amount:   amount,
		}
		want = want.Add(amount)
	}

	got := decimal.Zero
	for _, total := range AggregateByCategory(records) {
		got = got.Add(total.Total)
	}

	assert.True(t, want.Equal(got), "want %s got %s", want, got)
}

func TestAggregateByCategory_Empty(t *testing.T) {
	assert.Empty(t, AggregateByCategory(nil))
}

func TestAggregateByMonthAndType_ExampleScenario(t *testing.T) {
	got := AggregateByMonthAndType(exampleRecords())

	require.Len(t, got, 3)
	assert.Equal(t, MonthTypeTotal{Month: "Jan 2025", Type: transaction.TypeIncome, Total: got[0].Total}, got[0])
	assert.True(t, got[0].Total.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "Jan 2025", got[1].Month)
	assert.Equal(t, transaction.TypeExpense, got[1].Type)
	assert.True(t, got[1].Total.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, "Feb 2025", got[2].Month)
	assert.Equal(t, transaction.TypeExpense, got[2].Type)
	assert.True(t, got[2].Total.Equal(decimal.NewFromInt(3000)))
}

func TestCompareMonthly_ZeroFillsAndOrdersChronologically(t *testing.T) {
	records := []transaction.Transaction{
		tx("10-02-2025", transaction.TypeExpense, "Groceries", "3000"),
		tx("01-01-2025", transaction.TypeIncome, "Salary", "50000"),
		tx("05-01-2025", transaction.TypeExpense, "Rent", "15000"),
		tx("20-12-2024", transaction.TypeIncome, "Bonus", "1000"),
	}

	got := CompareMonthly(records)

	require.Len(t, got, 3)
	assert.Equal(t, "Dec 2024", got[0].Month)
	assert.True(t, got[0].Expense.IsZero())
	assert.Equal(t, "Jan 2025", got[1].Month)
	assert.True(t, got[1].Income.Equal(decimal.NewFromInt(50000)))
	assert.True(t, got[1].Expense.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, "Feb 2025", got[2].Month)
	assert.True(t, got[2].Income.IsZero())
	assert.True(t, got[2].Expense.Equal(decimal.NewFromInt(3000)))
}

func TestSum(t *testing.T) {
	got := Sum(exampleRecords())

	assert.Equal(t, 3, got.Count)
	assert.True(t, got.Income.Equal(decimal.NewFromInt(50000)))
	assert.True(t, got.Expense.Equal(decimal.NewFromInt(18000)))
	assert.True(t, got.Net.Equal(decimal.NewFromInt(32000)))
}
