package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date          string `form:"date"`   // YYYY-MM-DD; empty = all
	PaymentStatus string `form:"status"` // paid | partial | unpaid | all
	CustomerID    string `form:"customer_id"`
	Page          int    `form:"page,default=1"   validate:"min=1"`
	Limit         int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type RecordSaleRequest struct {
	// CustomerID is optional — walk-in sales carry no customer ledger rows.
	CustomerID    *string           `json:"customer_id"    validate:"omitempty,uuid"`
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	Discount      decimal.Decimal   `json:"discount"       validate:"min=0"`
	TotalAmount   decimal.Decimal   `json:"total_amount"   validate:"required"`
	PaymentStatus string            `json:"payment_status" validate:"required,oneof=paid partial unpaid"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=cash card transfer"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	Product   string          `json:"product"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Discount      decimal.Decimal    `json:"discount"`
	PaymentStatus string             `json:"payment_status"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     string             `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
