package service

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes; everything else surfaces as a 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrTotalMismatch      = errors.New("total_amount does not match item subtotals")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrDuplicateSKU       = errors.New("sku already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
