package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one row of the customer movement log — the append-only
// source of truth for customer balances. Amount is always stored
// positive; the sign is implied by Kind.
// Kind: "sale" (increases debt) | "payment" (decreases debt)
// Rows are NEVER modified or deleted.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Kind        string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string
	CreatedAt   time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
}

// SupplierTransaction mirrors Transaction for the supplier movement log.
// Kind: "purchase" (increases debt) | "payment"
type SupplierTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Kind        string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string
	CreatedAt   time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
