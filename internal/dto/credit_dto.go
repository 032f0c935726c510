package dto

import "github.com/shopspring/decimal"

// RecordPaymentRequest settles part of a customer's or supplier's debt.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description"`
}

// TransactionResponse is one row of a movement log.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

// StatementResponse is a party's full movement history plus its derived balance.
type StatementResponse struct {
	PartyID      string                `json:"party_id"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}
