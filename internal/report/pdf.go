package report

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const (
	pdfMargin       = 15.0
	pdfHeaderHeight = 10.0
	pdfRowHeight    = 8.0
)

var pdfColumnWidths = []float64{38, 34, 72, 40}

// GenerateTabularDocument writes a Letter-size PDF holding one table of records.
// The header row is repeated at the top of every page.
func GenerateTabularDocument(records []transaction.Transaction, path string) error {
	if len(records) == 0 {
		return &WriteError{Path: path, Err: ErrNoData}
	}

	return writeFile(path, func(w io.Writer) error {
		return renderPDF(records, w)
	})
}

func renderPDF(records []transaction.Transaction, w io.Writer) error {
	return buildPDF(records).Output(w)
}

func buildPDF(records []transaction.Transaction) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := pdf.GetPageSize()
	tableWidth := 0.0
	for _, cw := range pdfColumnWidths {
		tableWidth += cw
	}
	left := (pageWidth - tableWidth) / 2

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(245, 245, 245)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetX(left)
		for i, name := range Columns {
			pdf.CellFormat(pdfColumnWidths[i], pdfHeaderHeight, name, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetFillColor(245, 245, 220)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	drawHeader()

	for _, tx := range records {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			drawHeader()
		}

		cells := []string{
			tx.DateString(),
			string(tx.Type),
			fitText(pdf, tr(tx.Category), pdfColumnWidths[2]-2),
			tx.Amount.StringFixed(2),
		}
		pdf.SetX(left)
		for i, text := range cells {
			pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, text, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf
}

// fitText shortens text with an ellipsis until it fits width at the current font.
func fitText(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
