package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

var _ ITransactionLedger = (*TransactionLedger)(nil)

// TransactionLedger stores transactions in a comma-delimited file with a fixed header.
type TransactionLedger struct {
	path string
}

func NewTransactionLedger(path string) *TransactionLedger {
	return &TransactionLedger{path: path}
}

// Path returns the location of the backing file.
func (l *TransactionLedger) Path() string {
	return l.path
}

// Initialize creates the ledger file with its header when it does not exist yet.
// An existing non-empty file is left untouched.
func (l *TransactionLedger) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(l.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ledger dir: %w", err)
		}
	}

	info, err := os.Stat(l.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("stat ledger: %w", err)
	case info.Size() > 0:
		return nil
	}

	header, err := encodeRecords([][]string{transaction.Header})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(header); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	return nil
}

// ReadAll parses every record in file order. Any malformed record rejects the whole read.
func (l *TransactionLedger) ReadAll(ctx context.Context) ([]transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &transaction.CorruptRecordError{Line: 1, Reason: "missing header"}
	}
	if err != nil {
		return nil, corruptFromReadError(err)
	}
	if !isHeader(header) {
		return nil, &transaction.CorruptRecordError{
			Line:   1,
			Reason: fmt.Sprintf("unexpected header %q", strings.Join(header, ",")),
		}
	}

	txs := []transaction.Transaction{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, corruptFromReadError(err)
		}

		line, _ := reader.FieldPos(0)
		tx, err := decodeRecord(line, record)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// Append validates create and writes it as one new record at the end of the file.
func (l *TransactionLedger) Append(ctx context.Context, create *transaction.TransactionCreate) (transaction.Transaction, error) {
	tx, err := create.Parse()
	if err != nil {
		return transaction.Transaction{}, err
	}

	if err := l.AppendAll(ctx, []transaction.Transaction{tx}); err != nil {
		return transaction.Transaction{}, err
	}
	return tx, nil
}

// AppendAll writes already validated transactions with a single write call.
func (l *TransactionLedger) AppendAll(ctx context.Context, txs []transaction.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(txs) == 0 {
		return nil
	}

	records := make([][]string, len(txs))
	for i, tx := range txs {
		records[i] = encodeRecord(tx)
	}
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open ledger for append: %w", err)
	}
	defer f.Close()

	terminated, err := endsWithNewline(f)
	if err != nil {
		return err
	}
	if !terminated {
		data = append([]byte{'\n'}, data...)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	return nil
}

func isHeader(record []string) bool {
	if len(record) != len(transaction.Header) {
		return false
	}
	for i, name := range transaction.Header {
		field := strings.TrimSpace(record[i])
		if i == 0 {
			field = strings.TrimPrefix(field, "\ufeff")
		}
		if field != name {
			return false
		}
	}
	return true
}

func decodeRecord(line int, record []string) (transaction.Transaction, error) {
	if len(record) != len(transaction.Header) {
		return transaction.Transaction{}, &transaction.CorruptRecordError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", len(transaction.Header), len(record)),
		}
	}

	create := &transaction.TransactionCreate{
		Date:     record[0],
		Type:     record[1],
		Category: record[2],
		Amount:   record[3],
	}
	tx, err := create.Parse()
	if err != nil {
		return transaction.Transaction{}, &transaction.CorruptRecordError{Line: line, Reason: "invalid record", Err: err}
	}
	return tx, nil
}

func encodeRecord(tx transaction.Transaction) []string {
	return []string{
		tx.DateString(),
		string(tx.Type),
		tx.Category,
		tx.Amount.String(),
	}
}

func encodeRecords(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("encode ledger records: %w", err)
	}
	return buf.Bytes(), nil
}

func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat ledger: %w", err)
	}
	if info.Size() == 0 {
		return true, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, fmt.Errorf("read ledger tail: %w", err)
	}
	return last[0] == '\n', nil
}

func corruptFromReadError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &transaction.CorruptRecordError{Line: parseErr.Line, Reason: "malformed csv", Err: parseErr.Err}
	}
	return fmt.Errorf("read ledger: %w", err)
}
