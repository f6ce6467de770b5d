package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the external representation of a transaction date.
const DateLayout = "02-01-2006"

// TransactionType is either Income or Expense.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// Types lists the valid transaction types in display order.
var Types = []TransactionType{TypeIncome, TypeExpense}

// ParseType matches s against the known types, ignoring case and surrounding space.
func ParseType(s string) (TransactionType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Transaction is one recorded income or expense event.
type Transaction struct {
	Date     time.Time
	Type     TransactionType
	Category string
	Amount   decimal.Decimal
}

// DateString formats the date as DD-MM-YYYY.
func (t Transaction) DateString() string {
	return t.Date.Format(DateLayout)
}

// Equal reports whether both transactions carry the same four fields.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date.Equal(o.Date) &&
		t.Type == o.Type &&
		t.Category == o.Category &&
		t.Amount.Equal(o.Amount)
}

// TransactionCreate is the raw input for a new transaction, as typed by a user.
type TransactionCreate struct {
	Date     string
	Type     string
	Category string
	Amount   string
}

// Parse validates the raw fields and converts them into a Transaction.
// Presence of all four fields is checked before any field is parsed.
func (c *TransactionCreate) Parse() (Transaction, error) {
	fields := []struct {
		name  string
		value string
	}{
		{FieldDate, c.Date},
		{FieldType, c.Type},
		{FieldCategory, c.Category},
		{FieldAmount, c.Amount},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Transaction{}, &ValidationError{Kind: MissingField, Field: f.name}
		}
	}

	date, err := ParseDate(c.Date)
	if err != nil {
		return Transaction{}, &ValidationError{Kind: InvalidDate, Field: FieldDate, Value: c.Date, Err: err}
	}

	t, ok := ParseType(c.Type)
	if !ok {
		return Transaction{}, &ValidationError{Kind: InvalidType, Field: FieldType, Value: c.Type}
	}

	amount, err := ParseAmount(c.Amount)
	if err != nil {
		return Transaction{}, &ValidationError{Kind: InvalidAmount, Field: FieldAmount, Value: c.Amount, Err: err}
	}

	return Transaction{
		Date:     date,
		Type:     t,
		Category: strings.TrimSpace(c.Category),
		Amount:   amount,
	}, nil
}

// ParseDate parses a DD-MM-YYYY date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// ParseAmount parses a non-negative decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, errNegativeAmount
	}
	return amount, nil
}
