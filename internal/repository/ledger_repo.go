package repository

import (
	"context"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GeneralLedgerRepository stores shop-level revenue/expense rows.
// Append-only like the movement logs.
type GeneralLedgerRepository interface {
	CreateTx(tx *gorm.DB, e *model.GeneralLedgerEntry) error
	List(ctx context.Context, filter dto.LedgerFilter) ([]model.GeneralLedgerEntry, int64, error)
	// Summary returns total revenue and total expenses over the whole log.
	Summary(ctx context.Context) (revenue, expenses decimal.Decimal, err error)
	DB() *gorm.DB
}

type ledgerRepo struct{ db *gorm.DB }

func NewGeneralLedgerRepository(db *gorm.DB) GeneralLedgerRepository { return &ledgerRepo{db: db} }

func (r *ledgerRepo) CreateTx(tx *gorm.DB, e *model.GeneralLedgerEntry) error {
	return tx.Create(e).Error
}

func (r *ledgerRepo) List(ctx context.Context, filter dto.LedgerFilter) ([]model.GeneralLedgerEntry, int64, error) {
	var entries []model.GeneralLedgerEntry
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.GeneralLedgerEntry{})

	if filter.Kind != "" && filter.Kind != "all" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&entries).Error
	return entries, total, err
}

func (r *ledgerRepo) Summary(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var result struct {
		Revenue  decimal.Decimal
		Expenses decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'revenue' THEN amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN kind = 'expense' THEN amount ELSE 0 END), 0) AS expenses
		FROM general_ledger`).Scan(&result).Error
	return result.Revenue, result.Expenses, err
}

func (r *ledgerRepo) DB() *gorm.DB { return r.db }
