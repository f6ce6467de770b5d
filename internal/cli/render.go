package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/query"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...)
}

func styleForType(t transaction.TransactionType) lipgloss.Style {
	if t == transaction.TypeIncome {
		return incomeStyle
	}
	return expenseStyle
}

func renderTransactions(w io.Writer, records []transaction.Transaction) {
	if len(records) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No transactions found."))
		return
	}

	t := newTable("Date", "Type", "Category", "Amount").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			style := cellStyle.Inherit(styleForType(records[row].Type))
			if col == 3 {
				return style.Align(lipgloss.Right)
			}
			return style
		})
	for _, tx := range records {
		t.Row(tx.DateString(), string(tx.Type), tx.Category, formatAmount(tx.Amount))
	}
	fmt.Fprintln(w, t.Render())

	totals := query.Sum(records)
	fmt.Fprintf(w, "%d transactions  %s  %s  Net: %s\n",
		totals.Count,
		incomeStyle.Render("Income: "+formatAmount(totals.Income)),
		expenseStyle.Render("Expense: "+formatAmount(totals.Expense)),
		formatAmount(totals.Net),
	)
}

func renderCategoryTotals(w io.Writer, totals []query.CategoryTotal) {
	if len(totals) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No transactions found."))
		return
	}

	t := newTable("Category", "Total").StyleFunc(plainStyle)
	for _, ct := range totals {
		t.Row(ct.Category, formatAmount(ct.Total))
	}
	fmt.Fprintln(w, t.Render())
}

func renderMonthlyComparison(w io.Writer, months []query.MonthlyComparison) {
	if len(months) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No transactions found."))
		return
	}

	t := newTable("Month", "Income", "Expense", "Net").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return cellStyle.Inherit(incomeStyle)
			case col == 2:
				return cellStyle.Inherit(expenseStyle)
			}
			return cellStyle
		})
	for _, m := range months {
		t.Row(m.Month, formatAmount(m.Income), formatAmount(m.Expense), formatAmount(m.Income.Sub(m.Expense)))
	}
	fmt.Fprintln(w, t.Render())
}

func plainStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
