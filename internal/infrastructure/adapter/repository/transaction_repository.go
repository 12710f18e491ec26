package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-manager/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// civilLayout renders civil wall-clock bounds for AT TIME ZONE comparisons.
// The bounds must reach Postgres as plain timestamps, not instants.
const civilLayout = "2006-01-02 15:04:05"

// rowLocalDate is the row's instant rendered in its own stored timezone.
const rowLocalDate = "(transaction_date_utc AT TIME ZONE transaction_timezone)"

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a transaction entity to a database model
func entityToModel(t entity.Transaction) model.Transaction {
	return model.Transaction{
		TransactionID:       t.TransactionID,
		Name:                t.Name,
		Email:               t.Email,
		Amount:              t.Amount,
		TransactionDateUTC:  t.TransactionDateUTC.UTC(),
		TransactionTimezone: t.TransactionTimezone,
		Latitude:            t.Latitude,
		Longitude:           t.Longitude,
	}
}

// modelToEntity converts a transaction model to an entity
func modelToEntity(m model.Transaction) entity.Transaction {
	return entity.Transaction{
		TransactionID:       m.TransactionID,
		Name:                m.Name,
		Email:               m.Email,
		Amount:              m.Amount,
		TransactionDateUTC:  m.TransactionDateUTC.UTC(),
		TransactionTimezone: m.TransactionTimezone,
		Latitude:            m.Latitude,
		Longitude:           m.Longitude,
	}
}

// Upsert writes the batch with insert-or-replace semantics on transaction_id
func (r *TransactionRepository) Upsert(ctx context.Context, transactions []entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	models := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		models = append(models, entityToModel(t))
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		UpdateAll: true,
	}).Create(&models)

	if result.Error != nil {
		r.logger.Error("Failed to upsert transactions", map[string]any{
			"count": len(models),
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Transactions upserted", map[string]any{
		"count": len(models),
	})
	return nil
}

// GetAll retrieves every stored transaction
func (r *TransactionRepository) GetAll(ctx context.Context) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Order("transaction_date_utc").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to get transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return modelsToEntities(models), nil
}

// GetAllInUTCRange retrieves transactions whose UTC instant lies in [startUTC, endUTC]
func (r *TransactionRepository) GetAllInUTCRange(ctx context.Context, startUTC, endUTC time.Time) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("transaction_date_utc BETWEEN ? AND ?", startUTC.UTC(), endUTC.UTC()).
		Order("transaction_date_utc").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to get transactions in UTC range", map[string]any{
			"start": startUTC,
			"end":   endUTC,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return modelsToEntities(models), nil
}

// GetAllInClientTimezoneRange retrieves transactions whose row-local
// wall-clock time falls within the civil bounds [start, end]
func (r *TransactionRepository) GetAllInClientTimezoneRange(ctx context.Context, start, end time.Time) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where(rowLocalDate+" BETWEEN ?::timestamp AND ?::timestamp",
			start.Format(civilLayout), end.Format(civilLayout)).
		Order("transaction_date_utc").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to get transactions in client timezone range", map[string]any{
			"start": start.Format(civilLayout),
			"end":   end.Format(civilLayout),
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return modelsToEntities(models), nil
}

// GetAllByClientTimezoneDate retrieves transactions whose row-local calendar
// components match: year always, month and day only when supplied
func (r *TransactionRepository) GetAllByClientTimezoneDate(ctx context.Context, year int, month, day *int) ([]entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("EXTRACT(YEAR FROM "+rowLocalDate+") = ?", year)
	if month != nil {
		query = query.Where("EXTRACT(MONTH FROM "+rowLocalDate+") = ?", *month)
	}
	if day != nil {
		query = query.Where("EXTRACT(DAY FROM "+rowLocalDate+") = ?", *day)
	}

	var models []model.Transaction
	result := query.Order("transaction_date_utc").Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to get transactions by client timezone date", map[string]any{
			"year":  year,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return modelsToEntities(models), nil
}

func modelsToEntities(models []model.Transaction) []entity.Transaction {
	transactions := make([]entity.Transaction, 0, len(models))
	for _, m := range models {
		transactions = append(transactions, modelToEntity(m))
	}
	return transactions
}
