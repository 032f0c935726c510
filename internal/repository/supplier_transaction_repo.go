package repository

import (
	"context"

	"github.com/mohamm188/Trend-phone/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplierTransactionRepository mirrors TransactionRepository for the
// supplier movement log.
type SupplierTransactionRepository interface {
	CreateTx(tx *gorm.DB, t *model.SupplierTransaction) error
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]model.SupplierTransaction, error)
	BalanceTx(tx *gorm.DB, supplierID uuid.UUID) (decimal.Decimal, error)
	DB() *gorm.DB
}

type supplierTransactionRepo struct{ db *gorm.DB }

func NewSupplierTransactionRepository(db *gorm.DB) SupplierTransactionRepository {
	return &supplierTransactionRepo{db: db}
}

func (r *supplierTransactionRepo) CreateTx(tx *gorm.DB, t *model.SupplierTransaction) error {
	return tx.Create(t).Error
}

func (r *supplierTransactionRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]model.SupplierTransaction, error) {
	var txs []model.SupplierTransaction
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}

func (r *supplierTransactionRepo) BalanceTx(tx *gorm.DB, supplierID uuid.UUID) (decimal.Decimal, error) {
	var result struct{ Balance decimal.Decimal }
	err := tx.Raw(`
		SELECT COALESCE(SUM(CASE WHEN kind = 'purchase' THEN amount ELSE -amount END), 0) AS balance
		FROM supplier_transactions
		WHERE supplier_id = ?`, supplierID).Scan(&result).Error
	return result.Balance, err
}

func (r *supplierTransactionRepo) DB() *gorm.DB { return r.db }
