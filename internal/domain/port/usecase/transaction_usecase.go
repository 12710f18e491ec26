package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
)

// DateRange is a caller-supplied pair of date/time bounds. The kind tags on
// the bounds decide which store query variant runs and which timezone
// conversion applies.
type DateRange struct {
	StartDate entity.CivilDateTime
	EndDate   entity.CivilDateTime
}

// ByDate is a caller-supplied exact or partial calendar date. Month and Day
// are optional; Day requires Month.
type ByDate struct {
	Year  int
	Month *int
	Day   *int
}

// TransactionUseCase defines the transaction operations exposed over HTTP.
// Operations that interpret unspecified-kind bounds take the caller's
// timezone as an explicit argument, resolved once at the request boundary.
type TransactionUseCase interface {
	// Upsert parses a CSV upload and writes every row to the store.
	Upsert(ctx context.Context, file []byte, filename string) error

	// ExportExcel encodes the matching transactions as a spreadsheet.
	// A nil dateRange exports the whole table. userTimezone is consulted
	// only when the bounds carry the unspecified kind.
	ExportExcel(ctx context.Context, dateRange *DateRange, userTimezone string) ([]byte, error)

	// GetForUserTimezone returns transactions within the range, decorated
	// with their instant converted into the caller's timezone.
	GetForUserTimezone(ctx context.Context, dateRange DateRange, userTimezone string) ([]entity.UserTimezoneTransaction, error)

	// GetForClientTimezone returns transactions whose row-local wall-clock
	// time falls within the range, decorated with the row-local instant.
	GetForClientTimezone(ctx context.Context, dateRange DateRange) ([]entity.ClientTimezoneTransaction, error)

	// GetForClientTimezoneByDate matches on row-local calendar components.
	GetForClientTimezoneByDate(ctx context.Context, byDate ByDate) ([]entity.ClientTimezoneTransaction, error)
}
