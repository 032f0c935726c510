package repository

import (
	"context"

	"github.com/mohamm188/Trend-phone/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionRepository is the customer movement log. Rows are append-only:
// the interface deliberately exposes no update or delete.
type TransactionRepository interface {
	CreateTx(tx *gorm.DB, t *model.Transaction) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Transaction, error)
	// BalanceTx derives the authoritative balance from the full movement
	// history inside the calling transaction. A customer with no rows
	// yields zero, not an error.
	BalanceTx(tx *gorm.DB, customerID uuid.UUID) (decimal.Decimal, error)
	DB() *gorm.DB
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository { return &transactionRepo{db: db} }

func (r *transactionRepo) CreateTx(tx *gorm.DB, t *model.Transaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) BalanceTx(tx *gorm.DB, customerID uuid.UUID) (decimal.Decimal, error) {
	var result struct{ Balance decimal.Decimal }
	err := tx.Raw(`
		SELECT COALESCE(SUM(CASE WHEN kind = 'sale' THEN amount ELSE -amount END), 0) AS balance
		FROM transactions
		WHERE customer_id = ?`, customerID).Scan(&result).Error
	return result.Balance, err
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }
