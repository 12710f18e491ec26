package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validCSV = "transaction_id,name,email,amount,transaction_date,client_location\n" +
	"tx-001,\"Smith, John\",john@example.com,$145.50,2024-01-15 10:30:00,\"40.7128, -74.0060\"\n" +
	"tx-002,Jane Doe,jane@example.com,$12.00,2024-01-16 08:00:00,\"40.7128, -74.0060\"\n"

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses and persists the whole batch", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.resolver.EXPECT().Resolve(40.7128, -74.006).Return("America/New_York", nil).Times(2)
		m.repo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(transactions []entity.Transaction) bool {
			if len(transactions) != 2 {
				return false
			}
			first := transactions[0]
			return first.TransactionID == "tx-001" &&
				first.Name == "Smith, John" &&
				first.TransactionTimezone == "America/New_York" &&
				first.TransactionDateUTC.Equal(time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC))
		})).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := service.Upsert(ctx, []byte(validCSV), "transactions.csv")

		assert.NoError(t, err)
	})

	t.Run("Wrong extension never reaches the store", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		err := service.Upsert(ctx, []byte(validCSV), "transactions.xlsx")

		assert.ErrorIs(t, err, errs.ErrInvalidFileFormat)
	})

	t.Run("Empty file", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		err := service.Upsert(ctx, nil, "transactions.csv")

		assert.ErrorIs(t, err, errs.ErrEmptyFile)
	})

	t.Run("Schema mismatch", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		file := "id,name,email,amount,transaction_date,client_location\n"
		err := service.Upsert(ctx, []byte(file), "transactions.csv")

		assert.ErrorIs(t, err, errs.ErrSchemaMismatch)
	})

	t.Run("Bad row aborts before anything is persisted", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		// The resolver still runs for the bad row because location is mapped
		// before amount.
		m.resolver.EXPECT().Resolve(40.7128, -74.006).Return("America/New_York", nil).Times(3)
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		file := validCSV + "tx-003,Broken Row,broken@example.com,not-money,2024-01-17 09:00:00,\"40.7128, -74.0060\"\n"
		err := service.Upsert(ctx, []byte(file), "transactions.csv")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrFieldFormat)

		var rowErr *errs.RowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, 4, rowErr.Line)
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.resolver.EXPECT().Resolve(40.7128, -74.006).Return("America/New_York", nil).Times(2)
		m.repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		err := service.Upsert(ctx, []byte(validCSV), "transactions.csv")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
