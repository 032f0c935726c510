package dto

import "github.com/shopspring/decimal"

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	// OpeningBalance is fixed at creation; it becomes the customer's first
	// movement-log row so the derived balance starts from it.
	OpeningBalance decimal.Decimal `json:"opening_balance" validate:"min=0"`
	Notes          *string         `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          *string         `json:"phone,omitempty"`
	Email          *string         `json:"email,omitempty"`
	Address        *string         `json:"address,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Balance        decimal.Decimal `json:"balance"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      string          `json:"created_at"`
}
