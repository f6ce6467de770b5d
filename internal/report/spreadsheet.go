package report

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// SheetName is the name of the only sheet in a spreadsheet report.
const SheetName = "Transactions"

// GenerateSpreadsheet writes an XLSX workbook with one sheet: a header row
// followed by one row per record. Amounts are stored as numbers unless a
// float cannot hold them exactly, in which case the decimal text is kept.
func GenerateSpreadsheet(records []transaction.Transaction, path string) error {
	if len(records) == 0 {
		return &WriteError{Path: path, Err: ErrNoData}
	}

	return writeFile(path, func(w io.Writer) error {
		return renderSpreadsheet(records, w)
	})
}

func renderSpreadsheet(records []transaction.Transaction, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, name := range Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, tx := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			tx.DateString(),
			string(tx.Type),
			tx.Category,
			amountCell(tx.Amount),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func amountCell(amount decimal.Decimal) interface{} {
	f := amount.InexactFloat64()
	if decimal.NewFromFloat(f).Equal(amount) {
		return f
	}
	return amount.String()
}
