package transaction

import (
	txmodel "github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Transaction is the API response model for a ledger record.
// It is used only for responses, not for request bodies.
type Transaction struct {
	Date     string `json:"date" doc:"DD-MM-YYYY transaction date"`
	Type     string `json:"type" doc:"Income or Expense"`
	Category string `json:"category" doc:"Free-text category"`
	Amount   string `json:"amount" doc:"Decimal amount"`
}

func fromModel(tx txmodel.Transaction) Transaction {
	return Transaction{
		Date:     tx.DateString(),
		Type:     string(tx.Type),
		Category: tx.Category,
		Amount:   tx.Amount.String(),
	}
}
