package csvparse

import (
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/transaction-manager/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionRow() map[string]string {
	return map[string]string{
		"transaction_id":   "tx-001",
		"name":             "Smith, John",
		"email":            "john@example.com",
		"amount":           "$145.50",
		"transaction_date": "2024-01-15 10:30:00",
		"client_location":  "40.7128, -74.0060",
	}
}

func TestTransactionMapperColumns(t *testing.T) {
	mapper := NewTransactionMapper(coremocks.NewMockTimezoneResolver(t))

	assert.Equal(t, []string{
		"transaction_id",
		"name",
		"email",
		"amount",
		"transaction_date",
		"client_location",
	}, mapper.Columns())
}

func TestTransactionMapperMapRow(t *testing.T) {
	t.Run("Builds a transaction anchored to the resolved zone", func(t *testing.T) {
		mockResolver := coremocks.NewMockTimezoneResolver(t)
		mockResolver.EXPECT().Resolve(40.7128, -74.006).Return("America/New_York", nil).Once()

		mapper := NewTransactionMapper(mockResolver)
		tx, err := mapper.MapRow(transactionRow())

		require.NoError(t, err)
		assert.Equal(t, "tx-001", tx.TransactionID)
		assert.Equal(t, "Smith, John", tx.Name)
		assert.Equal(t, "john@example.com", tx.Email)
		assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(145.50)), "got %s", tx.Amount)
		assert.Equal(t, "America/New_York", tx.TransactionTimezone)
		assert.Equal(t, 40.7128, tx.Latitude)
		assert.Equal(t, -74.006, tx.Longitude)

		// 10:30 New York winter time is 15:30 UTC.
		expected := time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC)
		assert.True(t, tx.TransactionDateUTC.Equal(expected), "got %v", tx.TransactionDateUTC)
	})

	t.Run("Amount without currency sign", func(t *testing.T) {
		mockResolver := coremocks.NewMockTimezoneResolver(t)
		mockResolver.EXPECT().Resolve(40.7128, -74.006).Return("America/New_York", nil).Once()

		row := transactionRow()
		row["amount"] = "99.99"

		mapper := NewTransactionMapper(mockResolver)
		tx, err := mapper.MapRow(row)

		require.NoError(t, err)
		assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(99.99)))
	})

	t.Run("Malformed amount", func(t *testing.T) {
		mockResolver := coremocks.NewMockTimezoneResolver(t)
		mockResolver.EXPECT().Resolve(40.7128, -74.006).Return("America/New_York", nil).Once()

		row := transactionRow()
		row["amount"] = "$not-a-number"

		mapper := NewTransactionMapper(mockResolver)
		_, err := mapper.MapRow(row)

		assert.ErrorIs(t, err, errs.ErrFieldFormat)
	})

	t.Run("Malformed date", func(t *testing.T) {
		mockResolver := coremocks.NewMockTimezoneResolver(t)
		mockResolver.EXPECT().Resolve(40.7128, -74.006).Return("America/New_York", nil).Once()

		row := transactionRow()
		row["transaction_date"] = "last tuesday"

		mapper := NewTransactionMapper(mockResolver)
		_, err := mapper.MapRow(row)

		assert.ErrorIs(t, err, errs.ErrFieldFormat)
	})

	t.Run("Location without a comma", func(t *testing.T) {
		row := transactionRow()
		row["client_location"] = "40.7128"

		mapper := NewTransactionMapper(coremocks.NewMockTimezoneResolver(t))
		_, err := mapper.MapRow(row)

		assert.ErrorIs(t, err, errs.ErrFieldFormat)
	})

	t.Run("Location with non-numeric parts", func(t *testing.T) {
		row := transactionRow()
		row["client_location"] = "north, west"

		mapper := NewTransactionMapper(coremocks.NewMockTimezoneResolver(t))
		_, err := mapper.MapRow(row)

		assert.ErrorIs(t, err, errs.ErrFieldFormat)
	})

	t.Run("Resolver failure propagates", func(t *testing.T) {
		mockResolver := coremocks.NewMockTimezoneResolver(t)
		mockResolver.EXPECT().Resolve(40.7128, -74.006).Return("", errors.New("no zone")).Once()

		mapper := NewTransactionMapper(mockResolver)
		_, err := mapper.MapRow(transactionRow())

		assert.Error(t, err)
	})
}
