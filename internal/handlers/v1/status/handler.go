package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Handler struct {
	Ledger storage.Reader
}

func NewHandler(ledger storage.Reader) Handler {
	return Handler{Ledger: ledger}
}

// Handler reports liveness and checks that the ledger is readable,
// recording its size.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	records, err := h.Ledger.ReadAll(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}
	logData.AddData("ledgerRecords", len(records))

	w.WriteHeader(http.StatusOK)
	return nil
}
