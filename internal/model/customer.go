package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer buys on credit. Balance is a derived cache: it always equals
// the full aggregation of the customer's Transaction rows and is
// recomputed (not incremented) after every unit that touches them.
type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name    string    `gorm:"index;not null"`
	Phone   *string
	Email   *string
	Address *string
	// OpeningBalance is fixed at creation; it is realized as an initial
	// "sale" Transaction so the balance invariant stays literal.
	OpeningBalance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Balance        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
