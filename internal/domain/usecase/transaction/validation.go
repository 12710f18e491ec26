package transaction

import (
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/timeutil"
)

// ValidateDateRange checks the shape of a caller-supplied date range: both
// bounds present, end after start, no explicit UTC offsets, and matching
// kind tags. Kind mismatch is a hard error, never a silent coercion.
func ValidateDateRange(dateRange usecase.DateRange) error {
	vErr := errs.NewValidationError()

	if dateRange.StartDate.IsZero() {
		vErr.Add("startDate", "StartDate is required", nil)
	} else if dateRange.StartDate.Kind == entity.KindLocal {
		vErr.Add("startDate", "StartDate must not have an offset", errs.ErrOffsetNotAllowed)
	}

	if dateRange.EndDate.IsZero() {
		vErr.Add("endDate", "EndDate is required", nil)
	} else {
		if dateRange.EndDate.Kind == entity.KindLocal {
			vErr.Add("endDate", "EndDate must not have an offset", errs.ErrOffsetNotAllowed)
		}
		if !dateRange.StartDate.IsZero() && !dateRange.EndDate.Time.After(dateRange.StartDate.Time) {
			vErr.Add("endDate", "EndDate must be greater than StartDate", nil)
		}
	}

	if !dateRange.StartDate.IsZero() && !dateRange.EndDate.IsZero() &&
		dateRange.StartDate.Kind != dateRange.EndDate.Kind {
		vErr.Add("general", "StartDate and EndDate must have the same kind", errs.ErrMismatchedDateKinds)
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// requireUnspecifiedKind rejects UTC-kind bounds for the timezone-relative
// query branches, which only accept civil wall-clock ranges.
func requireUnspecifiedKind(dateRange usecase.DateRange) error {
	if dateRange.StartDate.Kind == entity.KindUTC || dateRange.EndDate.Kind == entity.KindUTC {
		return errs.ErrUTCKindNotAllowed
	}
	return nil
}

// ValidateByDate checks an exact or partial calendar date: year within
// 1..9999, month within 1..12, day within 1..31, day only together with
// month, and the day must actually exist in the given month and year.
func ValidateByDate(byDate usecase.ByDate) error {
	vErr := errs.NewValidationError()

	if byDate.Year < 1 || byDate.Year > 9999 {
		vErr.Add("year", "Year must be between 1 and 9999", nil)
	}
	if byDate.Month != nil && (*byDate.Month < 1 || *byDate.Month > 12) {
		vErr.Add("month", "Month must be between 1 and 12", nil)
	}
	if byDate.Day != nil && (*byDate.Day < 1 || *byDate.Day > 31) {
		vErr.Add("day", "Day must be between 1 and 31", nil)
	}

	if byDate.Day != nil && byDate.Month == nil {
		vErr.Add("general", "Month can't be empty if day has a value", errs.ErrMonthRequiredWithDay)
	}

	if !vErr.HasErrors() && byDate.Day != nil && byDate.Month != nil {
		if *byDate.Day > timeutil.DaysInMonth(byDate.Year, *byDate.Month) {
			vErr.Add("general", "The specified day does not exist in the specified month of the specified year", errs.ErrImpossibleDate)
		}
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
