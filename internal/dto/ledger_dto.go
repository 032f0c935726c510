package dto

import "github.com/shopspring/decimal"

type LedgerFilter struct {
	Kind     string `form:"kind" validate:"omitempty,oneof=revenue expense all"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type RecordLedgerEntryRequest struct {
	Kind        string          `json:"kind"     validate:"required,oneof=revenue expense"`
	Category    string          `json:"category" validate:"required"`
	Amount      decimal.Decimal `json:"amount"   validate:"required"`
	Description string          `json:"description"`
}

type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

type LedgerListResponse struct {
	Data  []LedgerEntryResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type LedgerSummaryResponse struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
