package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Base error types
var (
	// ErrNoTransactionsFound is returned when a well-formed query matches zero rows
	ErrNoTransactionsFound = errors.New("no transactions found")

	// ErrMissingTimezoneHeader is returned when the User-Timezone header is absent
	ErrMissingTimezoneHeader = errors.New("does not contain a header User-Timezone")

	// ErrInvalidTimezone is returned when a timezone string is not a canonical IANA identifier
	ErrInvalidTimezone = errors.New("timezone must be in IANA format")

	// ErrUTCKindNotAllowed is returned when a timezone-relative query receives UTC-kind bounds
	ErrUTCKindNotAllowed = errors.New("time must be local, not UTC")

	// ErrMismatchedDateKinds is returned when startDate and endDate carry different kinds
	ErrMismatchedDateKinds = errors.New("startDate and endDate must have the same kind")

	// ErrOffsetNotAllowed is returned when a date carries an explicit UTC offset
	ErrOffsetNotAllowed = errors.New("date must not carry a UTC offset")

	// ErrMonthRequiredWithDay is returned when a by-date query supplies a day without a month
	ErrMonthRequiredWithDay = errors.New("month can't be empty if day has a value")

	// ErrImpossibleDate is returned when a by-date query names a day that does not exist in the month
	ErrImpossibleDate = errors.New("the specified day does not exist in the specified month of the specified year")

	// ErrInvalidFileFormat is returned when the uploaded file is not a CSV
	ErrInvalidFileFormat = errors.New("file is not a CSV")

	// ErrEmptyFile is returned when the uploaded file has no content
	ErrEmptyFile = errors.New("file is empty or not provided")

	// ErrSchemaMismatch is returned when the CSV header row differs from the required columns
	ErrSchemaMismatch = errors.New("CSV header does not match the required columns")

	// ErrRowRead is returned when a CSV line cannot be read into the declared columns
	ErrRowRead = errors.New("unable to read line")

	// ErrFieldFormat is returned when a CSV field value cannot be parsed
	ErrFieldFormat = errors.New("invalid field format")

	// ErrGeoResolution is returned when coordinates are out of range or resolve to no zone
	ErrGeoResolution = errors.New("coordinates do not resolve to a known timezone")

	// ErrDatabaseConnection is returned when the store cannot be reached
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// HTTPStatus maps a domain error to the HTTP status the request boundary
// should answer with. Unknown errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoTransactionsFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingTimezoneHeader),
		errors.Is(err, ErrInvalidTimezone),
		errors.Is(err, ErrUTCKindNotAllowed),
		errors.Is(err, ErrMismatchedDateKinds),
		errors.Is(err, ErrOffsetNotAllowed),
		errors.Is(err, ErrMonthRequiredWithDay),
		errors.Is(err, ErrImpossibleDate),
		errors.Is(err, ErrInvalidFileFormat),
		errors.Is(err, ErrEmptyFile),
		errors.Is(err, ErrSchemaMismatch),
		errors.Is(err, ErrRowRead),
		errors.Is(err, ErrFieldFormat),
		errors.Is(err, ErrGeoResolution):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError aggregates request-shape failures keyed by field name, the
// way the API reports them. Cross-field rules use the "general" key. The
// individual rule sentinels stay reachable through errors.Is.
type ValidationError struct {
	Fields map[string][]string
	causes []error
}

// NewValidationError creates an empty validation error collector.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a failed rule for a field. cause may be nil for rules that have
// no dedicated sentinel.
func (e *ValidationError) Add(field, message string, cause error) {
	e.Fields[field] = append(e.Fields[field], message)
	if cause != nil {
		e.causes = append(e.causes, cause)
	}
}

// HasErrors reports whether any rule failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	total := 0
	for _, messages := range e.Fields {
		total += len(messages)
	}
	return fmt.Sprintf("validation failed with %d error(s)", total)
}

// Unwrap exposes the rule sentinels so callers can test with errors.Is.
func (e *ValidationError) Unwrap() []error {
	return e.causes
}

// RowError decorates a CSV ingestion failure with its line number.
type RowError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *RowError) Unwrap() error {
	return e.Err
}

// IsNotFoundError checks if the error is an empty-result error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNoTransactionsFound)
}
