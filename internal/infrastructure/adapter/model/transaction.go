package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions. The natural
// transaction_id is the primary key; upserts replace all other columns.
type Transaction struct {
	TransactionID       string          `gorm:"column:transaction_id;primaryKey;size:255"`
	Name                string          `gorm:"not null;size:255"`
	Email               string          `gorm:"not null;size:255"`
	Amount              decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TransactionDateUTC  time.Time       `gorm:"column:transaction_date_utc;type:timestamptz;not null;index"`
	TransactionTimezone string          `gorm:"not null;size:64"`
	Latitude            float64         `gorm:"not null"`
	Longitude           float64         `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
