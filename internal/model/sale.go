package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable header owning 1..N SaleItem rows. There is no
// update or delete operation on sales — corrections go through the
// customer ledger and stock adjustments.
// PaymentStatus: "paid" | "partial" | "unpaid"
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentStatus string          `gorm:"type:varchar(20);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null;default:'cash'"`
	CreatedAt     time.Time

	Customer *Customer  `gorm:"foreignKey:CustomerID"`
	Items    []SaleItem `gorm:"foreignKey:SaleID"`
}

// SaleItem references a Product but does not own it.
// Subtotal = Quantity × UnitPrice, fixed at write time.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
