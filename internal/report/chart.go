package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/carson-networks/finance-tracker/internal/query"
)

const (
	barWidth   = 28
	barSpacing = 8
)

var (
	incomeColor  = drawing.ColorFromHex("4caf50")
	expenseColor = drawing.ColorFromHex("f44336")
)

// RenderCategoryPie draws the category breakdown as a PNG pie chart.
// Categories with a zero total are left out.
func RenderCategoryPie(totals []query.CategoryTotal, path string) error {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	if !sum.IsPositive() {
		return &WriteError{Path: path, Err: ErrNoData}
	}

	values := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		if !t.Total.IsPositive() {
			continue
		}
		share := t.Total.Div(sum).Mul(decimal.NewFromInt(100)).InexactFloat64()
		values = append(values, chart.Value{
			Value: t.Total.InexactFloat64(),
			Label: fmt.Sprintf("%s %.1f%%", t.Category, share),
		})
	}

	pie := chart.PieChart{
		Title:  "Transaction Breakdown by Category",
		Width:  600,
		Height: 500,
		Values: values,
	}

	return writeFile(path, func(w io.Writer) error {
		return pie.Render(chart.PNG, w)
	})
}

// RenderMonthlyBars draws income and expense side by side for every month.
// Income bars are green and carry the month label; expense bars are red.
func RenderMonthlyBars(comparison []query.MonthlyComparison, path string) error {
	peak := decimal.Zero
	for _, m := range comparison {
		peak = decimal.Max(peak, m.Income, m.Expense)
	}
	if !peak.IsPositive() {
		return &WriteError{Path: path, Err: ErrNoData}
	}

	bars := make([]chart.Value, 0, 2*len(comparison))
	for _, m := range comparison {
		bars = append(bars,
			chart.Value{
				Label: m.Month,
				Value: m.Income.InexactFloat64(),
				Style: chart.Style{FillColor: incomeColor, StrokeColor: incomeColor},
			},
			chart.Value{
				Value: m.Expense.InexactFloat64(),
				Style: chart.Style{FillColor: expenseColor, StrokeColor: expenseColor},
			},
		)
	}

	width := 800
	if needed := len(bars)*(barWidth+barSpacing) + 200; needed > width {
		width = needed
	}

	bar := chart.BarChart{
		Title:      "Monthly Income vs Expense Comparison",
		Width:      width,
		Height:     500,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 50}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: peak.Mul(decimal.NewFromFloat(1.1)).InexactFloat64()},
		},
		Bars: bars,
	}

	return writeFile(path, func(w io.Writer) error {
		return bar.Render(chart.PNG, w)
	})
}
