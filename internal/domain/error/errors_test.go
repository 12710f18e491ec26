package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Empty result", err: ErrNoTransactionsFound, expected: http.StatusNotFound},
		{name: "Missing header", err: ErrMissingTimezoneHeader, expected: http.StatusBadRequest},
		{name: "Invalid timezone", err: ErrInvalidTimezone, expected: http.StatusBadRequest},
		{name: "UTC kind not allowed", err: ErrUTCKindNotAllowed, expected: http.StatusBadRequest},
		{name: "Bad CSV schema", err: ErrSchemaMismatch, expected: http.StatusBadRequest},
		{name: "Unresolvable coordinates", err: ErrGeoResolution, expected: http.StatusBadRequest},
		{name: "Database failure", err: ErrDatabaseConnection, expected: http.StatusInternalServerError},
		{name: "Unknown error", err: errors.New("surprise"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatusSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrEmptyFile)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))

	rowErr := &RowError{Line: 3, Err: fmt.Errorf("%w: bad amount", ErrFieldFormat)}
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(rowErr))
}

func TestValidationError(t *testing.T) {
	t.Run("Collects messages per field", func(t *testing.T) {
		vErr := NewValidationError()
		assert.False(t, vErr.HasErrors())

		vErr.Add("startDate", "StartDate is required", nil)
		vErr.Add("startDate", "StartDate must not have an offset", ErrOffsetNotAllowed)
		vErr.Add("endDate", "EndDate is required", nil)

		assert.True(t, vErr.HasErrors())
		assert.Len(t, vErr.Fields["startDate"], 2)
		assert.Len(t, vErr.Fields["endDate"], 1)
		assert.Equal(t, "validation failed with 3 error(s)", vErr.Error())
	})

	t.Run("Rule sentinels stay reachable", func(t *testing.T) {
		vErr := NewValidationError()
		vErr.Add("general", "StartDate and EndDate must have the same kind", ErrMismatchedDateKinds)

		assert.ErrorIs(t, vErr, ErrMismatchedDateKinds)
		assert.NotErrorIs(t, vErr, ErrOffsetNotAllowed)
	})
}

func TestRowError(t *testing.T) {
	rowErr := &RowError{Line: 7, Err: ErrRowRead}

	assert.Equal(t, "row 7: unable to read line", rowErr.Error())
	assert.ErrorIs(t, rowErr, ErrRowRead)

	var target *RowError
	require.ErrorAs(t, error(rowErr), &target)
	assert.Equal(t, 7, target.Line)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNoTransactionsFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrNoTransactionsFound)))
	assert.False(t, IsNotFoundError(ErrDatabaseConnection))
}
