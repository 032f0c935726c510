package dto

import "github.com/shopspring/decimal"

type PurchaseFilter struct {
	Date       string `form:"date"`
	SupplierID string `form:"supplier_id"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitCost  decimal.Decimal `json:"unit_cost"  validate:"required"`
}

type RecordPurchaseRequest struct {
	SupplierID    string                `json:"supplier_id"    validate:"required,uuid"`
	Items         []PurchaseItemRequest `json:"items"          validate:"required,min=1,dive"`
	TotalAmount   decimal.Decimal       `json:"total_amount"   validate:"required"`
	PaymentStatus string                `json:"payment_status" validate:"required,oneof=paid partial unpaid"`
}

type PurchaseItemResponse struct {
	Product   string          `json:"product"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type PurchaseResponse struct {
	ID            string                 `json:"id"`
	SupplierID    string                 `json:"supplier_id"`
	Items         []PurchaseItemResponse `json:"items"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	PaymentStatus string                 `json:"payment_status"`
	CreatedAt     string                 `json:"created_at"`
}

type PurchaseListResponse struct {
	Data  []PurchaseResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
