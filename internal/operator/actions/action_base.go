package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a unit of work run against a storage Writer. Returning an error
// rolls back everything the action staged.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
