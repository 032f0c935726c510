package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditService settles customer and supplier debt and derives balances.
//
// The balance is never incremented in place: after every unit of work that
// appends movement rows, the whole history is re-aggregated and the cached
// column overwritten. The recalc helpers run inside the caller's
// transaction so the new rows and the new balance commit together.
type CreditService interface {
	RecordCustomerPayment(ctx context.Context, customerID uuid.UUID, req dto.RecordPaymentRequest) (*dto.TransactionResponse, error)
	RecordSupplierPayment(ctx context.Context, supplierID uuid.UUID, req dto.RecordPaymentRequest) (*dto.TransactionResponse, error)
	CustomerStatement(ctx context.Context, customerID uuid.UUID) (*dto.StatementResponse, error)
	SupplierStatement(ctx context.Context, supplierID uuid.UUID) (*dto.StatementResponse, error)

	RecalcCustomerBalanceTx(tx *gorm.DB, customerID uuid.UUID) (decimal.Decimal, error)
	RecalcSupplierBalanceTx(tx *gorm.DB, supplierID uuid.UUID) (decimal.Decimal, error)
}

type creditService struct {
	customers   repository.CustomerRepository
	suppliers   repository.SupplierRepository
	customerTxs repository.TransactionRepository
	supplierTxs repository.SupplierTransactionRepository
}

func NewCreditService(
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
	customerTxs repository.TransactionRepository,
	supplierTxs repository.SupplierTransactionRepository,
) CreditService {
	return &creditService{
		customers:   customers,
		suppliers:   suppliers,
		customerTxs: customerTxs,
		supplierTxs: supplierTxs,
	}
}

func (s *creditService) RecordCustomerPayment(ctx context.Context, customerID uuid.UUID, req dto.RecordPaymentRequest) (*dto.TransactionResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
	}

	t := model.Transaction{
		CustomerID:  customerID,
		Kind:        "payment",
		Amount:      req.Amount,
		Description: req.Description,
	}

	err := runTx(ctx, s.customerTxs.DB(), func(tx *gorm.DB) error {
		if err := s.customerTxs.CreateTx(tx, &t); err != nil {
			return err
		}
		_, err := s.RecalcCustomerBalanceTx(tx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("customer_id", customerID.String()).
		Str("amount", req.Amount.StringFixed(2)).
		Msg("customer payment recorded")

	return transactionResponse(&t), nil
}

func (s *creditService) RecordSupplierPayment(ctx context.Context, supplierID uuid.UUID, req dto.RecordPaymentRequest) (*dto.TransactionResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		return nil, fmt.Errorf("supplier %s: %w", supplierID, ErrNotFound)
	}

	t := model.SupplierTransaction{
		SupplierID:  supplierID,
		Kind:        "payment",
		Amount:      req.Amount,
		Description: req.Description,
	}

	err := runTx(ctx, s.supplierTxs.DB(), func(tx *gorm.DB) error {
		if err := s.supplierTxs.CreateTx(tx, &t); err != nil {
			return err
		}
		_, err := s.RecalcSupplierBalanceTx(tx, supplierID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("supplier_id", supplierID.String()).
		Str("amount", req.Amount.StringFixed(2)).
		Msg("supplier payment recorded")

	return supplierTransactionResponse(&t), nil
}

func (s *creditService) CustomerStatement(ctx context.Context, customerID uuid.UUID) (*dto.StatementResponse, error) {
	c, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
	}
	txs, err := s.customerTxs.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := &dto.StatementResponse{
		PartyID:      c.ID.String(),
		Balance:      c.Balance,
		Transactions: make([]dto.TransactionResponse, 0, len(txs)),
	}
	for i := range txs {
		out.Transactions = append(out.Transactions, *transactionResponse(&txs[i]))
	}
	return out, nil
}

func (s *creditService) SupplierStatement(ctx context.Context, supplierID uuid.UUID) (*dto.StatementResponse, error) {
	sup, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier %s: %w", supplierID, ErrNotFound)
	}
	txs, err := s.supplierTxs.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	out := &dto.StatementResponse{
		PartyID:      sup.ID.String(),
		Balance:      sup.Balance,
		Transactions: make([]dto.TransactionResponse, 0, len(txs)),
	}
	for i := range txs {
		out.Transactions = append(out.Transactions, *supplierTransactionResponse(&txs[i]))
	}
	return out, nil
}

// RecalcCustomerBalanceTx derives the balance from the full movement log
// and persists it, inside the caller's transaction.
func (s *creditService) RecalcCustomerBalanceTx(tx *gorm.DB, customerID uuid.UUID) (decimal.Decimal, error) {
	balance, err := s.customerTxs.BalanceTx(tx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.customers.UpdateBalanceTx(tx, customerID, balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *creditService) RecalcSupplierBalanceTx(tx *gorm.DB, supplierID uuid.UUID) (decimal.Decimal, error) {
	balance, err := s.supplierTxs.BalanceTx(tx, supplierID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.suppliers.UpdateBalanceTx(tx, supplierID, balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func transactionResponse(t *model.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID.String(),
		Kind:        t.Kind,
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func supplierTransactionResponse(t *model.SupplierTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID.String(),
		Kind:        t.Kind,
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
