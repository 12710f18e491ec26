package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/timeutil"
)

// GetForUserTimezone returns transactions whose UTC instant lies within the
// caller's range. The bounds must carry the unspecified kind; they are
// anchored to the caller's timezone and converted to UTC before querying.
// Each result row is decorated with its instant in the caller's timezone —
// the caller's zone, not the row's own origin zone.
func (s *Service) GetForUserTimezone(
	ctx context.Context,
	dateRange usecase.DateRange,
	userTimezone string,
) ([]entity.UserTimezoneTransaction, error) {
	if err := ValidateDateRange(dateRange); err != nil {
		return nil, err
	}
	if err := requireUnspecifiedKind(dateRange); err != nil {
		return nil, err
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

	transactions, err := s.repo.GetAllInUTCRange(ctx, startUTC, endUTC)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, errs.ErrNoTransactionsFound
	}

	result := make([]entity.UserTimezoneTransaction, 0, len(transactions))
	for _, t := range transactions {
		local, err := timeutil.ToLocal(t.TransactionDateUTC, timezoneID)
		if err != nil {
			return nil, err
		}
		result = append(result, entity.UserTimezoneTransaction{
			Transaction:                   t,
			TransactionDateInUserTimezone: local,
		})
	}
	return result, nil
}

// GetForClientTimezone returns transactions whose instant, converted into
// the row's own stored timezone, falls within the caller's civil wall-clock
// bounds. No header timezone is involved; the comparison frame is per row.
func (s *Service) GetForClientTimezone(
	ctx context.Context,
	dateRange usecase.DateRange,
) ([]entity.ClientTimezoneTransaction, error) {
	if err := ValidateDateRange(dateRange); err != nil {
		return nil, err
	}
	if err := requireUnspecifiedKind(dateRange); err != nil {
		return nil, err
	}

	transactions, err := s.repo.GetAllInClientTimezoneRange(ctx, dateRange.StartDate.Time, dateRange.EndDate.Time)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, errs.ErrNoTransactionsFound
	}

	return s.decorateClientTimezone(transactions)
}

// GetForClientTimezoneByDate matches transactions on row-local calendar
// components: year always, month and day only when supplied.
func (s *Service) GetForClientTimezoneByDate(
	ctx context.Context,
	byDate usecase.ByDate,
) ([]entity.ClientTimezoneTransaction, error) {
	if err := ValidateByDate(byDate); err != nil {
		return nil, err
	}

	transactions, err := s.repo.GetAllByClientTimezoneDate(ctx, byDate.Year, byDate.Month, byDate.Day)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, errs.ErrNoTransactionsFound
	}

	return s.decorateClientTimezone(transactions)
}

func (s *Service) decorateClientTimezone(transactions []entity.Transaction) ([]entity.ClientTimezoneTransaction, error) {
	result := make([]entity.ClientTimezoneTransaction, 0, len(transactions))
	for _, t := range transactions {
		local, err := timeutil.ToLocal(t.TransactionDateUTC, t.TransactionTimezone)
		if err != nil {
			// The stored timezone is validated at ingestion time, so this
			// points at corrupted data rather than caller input. Reported as
			// a server-side failure, not a 400.
			s.logger.Error("Stored timezone failed to load", map[string]any{
				"transaction_id": t.TransactionID,
				"timezone":       t.TransactionTimezone,
				"error":          err.Error(),
			})
			return nil, fmt.Errorf("%w: stored timezone %q for transaction %s is not loadable",
				errs.ErrInternalServer, t.TransactionTimezone, t.TransactionID)
		}
		result = append(result, entity.ClientTimezoneTransaction{
			Transaction:                     t,
			TransactionDateInClientTimezone: local,
		})
	}
	return result, nil
}
