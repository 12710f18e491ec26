package csvparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/timeutil"
)

// transactionColumns is the exact header row a transaction CSV must carry.
var transactionColumns = []string{
	"transaction_id",
	"name",
	"email",
	"amount",
	"transaction_date",
	"client_location",
}

// TransactionMapper maps a parsed CSV row into a Transaction entity. The raw
// transaction_date is a civil date/time with no offset; it is anchored to the
// timezone derived from the row's client_location and converted to UTC.
type TransactionMapper struct {
	resolver coreport.TimezoneResolver
}

// NewTransactionMapper creates a mapper backed by the given geo resolver.
func NewTransactionMapper(resolver coreport.TimezoneResolver) *TransactionMapper {
	return &TransactionMapper{resolver: resolver}
}

// Columns returns the required header row for transaction CSV files.
func (m *TransactionMapper) Columns() []string {
	return transactionColumns
}

// MapRow constructs a Transaction from one CSV row.
func (m *TransactionMapper) MapRow(row map[string]string) (entity.Transaction, error) {
	latitude, longitude, err := splitLocation(row["client_location"])
	if err != nil {
		return entity.Transaction{}, err
	}

	timezoneID, err := m.resolver.Resolve(latitude, longitude)
	if err != nil {
		return entity.Transaction{}, err
	}

	amount, err := parseAmount(row["amount"])
	if err != nil {
		return entity.Transaction{}, err
	}

	civil, err := entity.ParseCivilDateTime(row["transaction_date"])
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("%w: transaction_date: %v", errs.ErrFieldFormat, err)
	}

	dateUTC, err := timeutil.ToUTC(civil.Time, timezoneID)
	if err != nil {
		return entity.Transaction{}, err
	}

	return entity.Transaction{
		TransactionID:       row["transaction_id"],
		Name:                row["name"],
		Email:               row["email"],
		Amount:              amount,
		TransactionDateUTC:  dateUTC,
		TransactionTimezone: timezoneID,
		Latitude:            latitude,
		Longitude:           longitude,
	}, nil
}

// parseAmount strips dollar signs and parses the rest as an exact decimal in
// the invariant numeric format.
func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "$", ""))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q", errs.ErrFieldFormat, value)
	}
	return amount, nil
}

// splitLocation splits a "lat,lon" pair into two floats.
func splitLocation(location string) (float64, float64, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: client_location %q must be \"latitude,longitude\"", errs.ErrFieldFormat, location)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude %q", errs.ErrFieldFormat, parts[0])
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude %q", errs.ErrFieldFormat, parts[1])
	}

	return latitude, longitude, nil
}
