package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
)

// DateRangeRequest represents the API request body carrying a date range.
// Kind detection happens while binding: a trailing Z marks UTC, an explicit
// offset marks local (rejected by validation), anything else is unspecified.
type DateRangeRequest struct {
	StartDate entity.CivilDateTime `json:"startDate"`
	EndDate   entity.CivilDateTime `json:"endDate"`
}

// ByDateRequest represents the API request body for exact or partial dates
type ByDateRequest struct {
	Year  int  `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// TransactionResponse represents one transaction in API responses
type TransactionResponse struct {
	TransactionID       string          `json:"transactionId"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Amount              decimal.Decimal `json:"amount"`
	TransactionDateUTC  time.Time       `json:"transactionDateUtc"`
	TransactionTimezone string          `json:"transactionTimezone"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
}

// UserTimezoneTransactionResponse adds the instant converted into the
// caller's timezone
type UserTimezoneTransactionResponse struct {
	TransactionResponse
	TransactionDateInUserTimezone time.Time `json:"transactionDateInUserTimezone"`
}

// ClientTimezoneTransactionResponse adds the instant converted into the
// row's own stored timezone
type ClientTimezoneTransactionResponse struct {
	TransactionResponse
	TransactionDateInClientTimezone time.Time `json:"transactionDateInClientTimezone"`
}

// NewTransactionResponse maps a transaction entity to its response shape
func NewTransactionResponse(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       t.TransactionID,
		Name:                t.Name,
		Email:               t.Email,
		Amount:              t.Amount,
		TransactionDateUTC:  t.TransactionDateUTC,
		TransactionTimezone: t.TransactionTimezone,
		Latitude:            t.Latitude,
		Longitude:           t.Longitude,
	}
}

// NewUserTimezoneResponses maps user-timezone projections to response shapes
func NewUserTimezoneResponses(transactions []entity.UserTimezoneTransaction) []UserTimezoneTransactionResponse {
	result := make([]UserTimezoneTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, UserTimezoneTransactionResponse{
			TransactionResponse:           NewTransactionResponse(t.Transaction),
			TransactionDateInUserTimezone: t.TransactionDateInUserTimezone,
		})
	}
	return result
}

// NewClientTimezoneResponses maps client-timezone projections to response shapes
func NewClientTimezoneResponses(transactions []entity.ClientTimezoneTransaction) []ClientTimezoneTransactionResponse {
	result := make([]ClientTimezoneTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, ClientTimezoneTransactionResponse{
			TransactionResponse:             NewTransactionResponse(t.Transaction),
			TransactionDateInClientTimezone: t.TransactionDateInClientTimezone,
		})
	}
	return result
}
