package transaction

import (
	"context"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/timeutil"
)

// exportSheet is the worksheet name for exported transactions.
const exportSheet = "Transactions"

// exportHeaders is the declared column order for exported transactions. The
// row builder below must stay in sync with it.
var exportHeaders = []string{
	"TransactionId",
	"Name",
	"Email",
	"Amount",
	"TransactionDateUtc",
	"TransactionTimezone",
	"Latitude",
	"Longitude",
}

// ExportExcel encodes the matching transactions as a spreadsheet. With a nil
// range the whole table is exported. UTC-kind bounds query the store
// directly; unspecified-kind bounds are anchored to the caller's timezone
// first. Validation guarantees the two bounds never mix kinds.
func (s *Service) ExportExcel(
	ctx context.Context,
	dateRange *usecase.DateRange,
	userTimezone string,
) ([]byte, error) {
	transactions, err := s.collectForExport(ctx, dateRange, userTimezone)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, errs.ErrNoTransactionsFound
	}

	data, err := s.encoder.Encode(exportSheet, exportHeaders, exportRows(transactions))
	if err != nil {
		s.logger.Error("Failed to encode export", map[string]any{
			"count": len(transactions),
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transactions exported", map[string]any{
		"count": len(transactions),
	})
	return data, nil
}

func (s *Service) collectForExport(
	ctx context.Context,
	dateRange *usecase.DateRange,
	userTimezone string,
) ([]entity.Transaction, error) {
	if dateRange == nil {
		return s.repo.GetAll(ctx)
	}

	if err := ValidateDateRange(*dateRange); err != nil {
		return nil, err
	}

	if dateRange.StartDate.Kind == entity.KindUTC {
		return s.repo.GetAllInUTCRange(ctx, dateRange.StartDate.Time, dateRange.EndDate.Time)
	}

	timezoneID, err := s.resolveUserTimezone(userTimezone)
	if err != nil {
		return nil, err
	}
	startUTC, err := timeutil.ToUTC(dateRange.StartDate.Time, timezoneID)
	if err != nil {
		return nil, err
	}
	endUTC, err := timeutil.ToUTC(dateRange.EndDate.Time, timezoneID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAllInUTCRange(ctx, startUTC, endUTC)
}

func exportRows(transactions []entity.Transaction) [][]any {
	rows := make([][]any, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []any{
			t.TransactionID,
			t.Name,
			t.Email,
			t.Amount.String(),
			t.TransactionDateUTC.Format("2006-01-02 15:04:05"),
			t.TransactionTimezone,
			t.Latitude,
			t.Longitude,
		})
	}
	return rows
}
