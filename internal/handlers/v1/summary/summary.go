package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/query"
)

// SummaryInput is the Huma input shared by the summary endpoints.
type SummaryInput struct {
	Body common.FilterBody
}

// CategoryTotal is the API model for one category's total.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    string `json:"total" doc:"Decimal sum of amounts"`
}

// MonthTypeTotal is the API model for one month and type total.
type MonthTypeTotal struct {
	Month string `json:"month" doc:"Month label, e.g. Jan 2025"`
	Type  string `json:"type" doc:"Income or Expense"`
	Total string `json:"total" doc:"Decimal sum of amounts"`
}

type CategorySummaryOutput struct {
	Body struct {
		Categories []CategoryTotal `json:"categories" doc:"Totals in order of first appearance"`
	}
}

type MonthlySummaryOutput struct {
	Body struct {
		Months []MonthTypeTotal `json:"months" doc:"Totals in order of first appearance"`
	}
}

type summarizer interface {
	SummarizeByCategory(ctx context.Context, filter query.Filter) ([]query.CategoryTotal, error)
	SummarizeByMonth(ctx context.Context, filter query.Filter) ([]query.MonthTypeTotal, error)
}

// Handler serves POST /v1/summary/category and POST /v1/summary/monthly.
type Handler struct {
	TransactionService summarizer
}

func NewHandler(svc summarizer) *Handler {
	return &Handler{TransactionService: svc}
}

// Register registers both summary endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summary-by-category",
		Method:      http.MethodPost,
		Path:        "/v1/summary/category",
		Summary:     "Summarize by category",
		Description: "Sums the filtered transactions per category.",
		Tags:        []string{"Summaries"},
	}, h.byCategory)

	huma.Register(api, huma.Operation{
		OperationID: "summary-by-month",
		Method:      http.MethodPost,
		Path:        "/v1/summary/monthly",
		Summary:     "Summarize by month",
		Description: "Sums the filtered transactions per month and type.",
		Tags:        []string{"Summaries"},
	}, h.byMonth)
}

func (h *Handler) byCategory(ctx context.Context, input *SummaryInput) (*CategorySummaryOutput, error) {
	filter, err := input.Body.ToFilter()
	if err != nil {
		return nil, err
	}

	totals, err := h.TransactionService.SummarizeByCategory(ctx, filter)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(totals))
	}

	out := &CategorySummaryOutput{}
	out.Body.Categories = make([]CategoryTotal, len(totals))
	for i, t := range totals {
		out.Body.Categories[i] = CategoryTotal{Category: t.Category, Total: t.Total.String()}
	}
	return out, nil
}

func (h *Handler) byMonth(ctx context.Context, input *SummaryInput) (*MonthlySummaryOutput, error) {
	filter, err := input.Body.ToFilter()
	if err != nil {
		return nil, err
	}

	totals, err := h.TransactionService.SummarizeByMonth(ctx, filter)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("monthTypeCount", len(totals))
	}

	out := &MonthlySummaryOutput{}
	out.Body.Months = make([]MonthTypeTotal, len(totals))
	for i, t := range totals {
		out.Body.Months[i] = MonthTypeTotal{Month: t.Month, Type: string(t.Type), Total: t.Total.String()}
	}
	return out, nil
}
