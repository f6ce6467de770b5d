package transaction

import (
	"errors"
	"fmt"
)

// Field names as they appear in the ledger header.
const (
	FieldDate     = "Date"
	FieldType     = "Type"
	FieldCategory = "Category"
	FieldAmount   = "Amount"
)

// Header is the fixed first row of the ledger file.
var Header = []string{FieldDate, FieldType, FieldCategory, FieldAmount}

var errNegativeAmount = errors.New("amount must not be negative")

// ValidationKind classifies why a transaction was rejected.
type ValidationKind int

const (
	MissingField ValidationKind = iota
	InvalidAmount
	InvalidDate
	InvalidType
)

func (k ValidationKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case InvalidAmount:
		return "invalid amount"
	case InvalidDate:
		return "invalid date"
	case InvalidType:
		return "invalid type"
	default:
		return "invalid input"
	}
}

// ValidationError is returned when input does not form a valid transaction.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("%s: %s must be filled", e.Kind, e.Field)
	case InvalidAmount:
		return fmt.Sprintf("%s: %q must be a valid non-negative number", e.Kind, e.Value)
	case InvalidDate:
		return fmt.Sprintf("%s: %q must be formatted DD-MM-YYYY", e.Kind, e.Value)
	case InvalidType:
		return fmt.Sprintf("%s: %q must be Income or Expense", e.Kind, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CorruptRecordError is returned when a persisted record cannot be parsed.
// Line is 1-based and counts the header.
type CorruptRecordError struct {
	Line   int
	Reason string
	Err    error
}

func (e *CorruptRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt ledger record at line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt ledger record at line %d: %s", e.Line, e.Reason)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
