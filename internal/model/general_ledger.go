package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeneralLedgerEntry records shop-level revenue and expenses,
// independent of customer and supplier balances.
// Kind: "revenue" | "expense"
type GeneralLedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind        string          `gorm:"type:varchar(20);not null"`
	Category    string          `gorm:"index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string
	CreatedAt   time.Time
}

// TableName overrides GORM's pluralization (general_ledger_entries → general_ledger).
func (GeneralLedgerEntry) TableName() string { return "general_ledger" }
