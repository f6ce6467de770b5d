// Package common holds request pieces shared by the v1 handlers.
package common

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/query"
)

// FilterBody narrows a request to a date range and transaction type.
type FilterBody struct {
	StartDate string `json:"startDate,omitempty" doc:"Inclusive start date, DD-MM-YYYY"`
	EndDate   string `json:"endDate,omitempty" doc:"Inclusive end date, DD-MM-YYYY"`
	Type      string `json:"type,omitempty" enum:"All,Income,Expense" doc:"Transaction type, defaults to All"`
}

// ToFilter parses the body, reporting bad dates or ranges as 400.
func (b FilterBody) ToFilter() (query.Filter, error) {
	f, err := query.NewFilter(b.StartDate, b.EndDate, b.Type)
	if err != nil {
		return query.Filter{}, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	return f, nil
}
