package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier mirrors Customer on the purchasing side. Balance is derived
// from SupplierTransaction rows by full aggregation.
type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Phone     *string
	Email     *string
	Address   *string
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Supplier) TableName() string { return "suppliers" }
