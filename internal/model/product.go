package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item — a phone or an accessory.
// StockQuantity is mutated only inside coordinator transactions and is
// intentionally unclamped: the configured stock policy decides whether a
// sale may drive it negative (see service.InventoryService).
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU           string    `gorm:"column:sku;uniqueIndex;not null"`
	Name          string    `gorm:"index;not null"`
	Category      string    `gorm:"type:varchar(20);not null"` // "phone" | "accessory"
	Brand         *string
	Model         *string
	SalePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	StockQuantity int             `gorm:"not null;default:0"`
	// OpeningStock is a snapshot taken at creation and never updated.
	OpeningStock  int    `gorm:"not null;default:0"`
	MinStockLevel int    `gorm:"not null;default:5"`
	Unit          string `gorm:"not null;default:'unit'"`
	Notes         *string
	Warehouse     *string
	Location      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
