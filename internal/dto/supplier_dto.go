package dto

import "github.com/shopspring/decimal"

type CreateSupplierRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type UpdateSupplierRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type SupplierResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Address   *string         `json:"address,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	Notes     *string         `json:"notes,omitempty"`
	CreatedAt string          `json:"created_at"`
}
