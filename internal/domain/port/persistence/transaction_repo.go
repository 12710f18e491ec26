package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
)

// TransactionRepository defines the store contract the query planner relies
// on. All instants handed to GetAllInUTCRange are absolute UTC; the bounds of
// GetAllInClientTimezoneRange are civil wall-clock values evaluated per row
// against the row's own stored timezone.
type TransactionRepository interface {
	// Upsert writes the batch keyed by transaction_id; conflicting keys
	// overwrite all non-key columns. The call is atomic at batch level.
	Upsert(ctx context.Context, transactions []entity.Transaction) error

	// GetAll returns every stored transaction.
	GetAll(ctx context.Context) ([]entity.Transaction, error)

	// GetAllInUTCRange returns transactions whose UTC instant lies in
	// [startUTC, endUTC].
	GetAllInUTCRange(ctx context.Context, startUTC, endUTC time.Time) ([]entity.Transaction, error)

	// GetAllInClientTimezoneRange returns transactions whose instant,
	// converted into the row's own timezone, lies within the civil
	// wall-clock bounds [start, end].
	GetAllInClientTimezoneRange(ctx context.Context, start, end time.Time) ([]entity.Transaction, error)

	// GetAllByClientTimezoneDate returns transactions whose instant,
	// converted into the row's own timezone, matches the calendar
	// components: year always, month and day only when supplied.
	GetAllByClientTimezoneDate(ctx context.Context, year int, month, day *int) ([]entity.Transaction, error)
}
