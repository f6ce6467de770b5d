package service

import (
	"fmt"
	"strings"
)

// ReportFormat selects the document produced by GenerateReport.
type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
)

// ParseReportFormat accepts pdf, excel or xlsx in any case.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return ReportFormatPDF, nil
	case "excel", "xlsx":
		return ReportFormatExcel, nil
	}
	return "", fmt.Errorf("unknown report format %q: must be pdf or excel", s)
}

// ChartKind selects the chart produced by RenderChart.
type ChartKind string

const (
	// ChartPie shows the category breakdown.
	ChartPie ChartKind = "pie"
	// ChartBar compares income and expense per month.
	ChartBar ChartKind = "bar"
)

// ParseChartKind accepts pie or bar in any case.
func ParseChartKind(s string) (ChartKind, error) {
	switch ChartKind(strings.ToLower(strings.TrimSpace(s))) {
	case ChartPie:
		return ChartPie, nil
	case ChartBar:
		return ChartBar, nil
	}
	return "", fmt.Errorf("unknown chart kind %q: must be pie or bar", s)
}
