package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a financial transaction ingested from a CSV upload.
// A transaction is immutable once written; re-ingesting the same
// TransactionID replaces every other field (upsert, last write wins).
type Transaction struct {
	TransactionID       string          // Natural key, unique across the store
	Name                string          // Name of the transaction owner
	Email               string          // Email of the transaction owner
	Amount              decimal.Decimal // Monetary amount, exact decimal
	TransactionDateUTC  time.Time       // Always an absolute instant in UTC
	TransactionTimezone string          // IANA zone of the place the transaction occurred
	Latitude            float64         // Origin latitude the timezone was derived from
	Longitude           float64         // Origin longitude the timezone was derived from
}

// UserTimezoneTransaction is a read projection that adds the transaction
// instant converted into the timezone the caller supplied with the request.
// Computed at query time, never persisted.
type UserTimezoneTransaction struct {
	Transaction
	TransactionDateInUserTimezone time.Time
}

// ClientTimezoneTransaction is a read projection that adds the transaction
// instant converted into the row's own stored timezone.
type ClientTimezoneTransaction struct {
	Transaction
	TransactionDateInClientTimezone time.Time
}
