package model

import (
	"time"

	"github.com/google/uuid"
)

// StockAdjustment records a manual removal of stock.
// Kind: "damaged" | "lost" | "correction" — every kind subtracts
// Quantity from the product's stock; the kind only classifies why.
type StockAdjustment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Quantity  int       `gorm:"not null"`
	Reason    string
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
