package repository

import (
	"context"

	"github.com/mohamm188/Trend-phone/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockAdjustmentRepository interface {
	CreateTx(tx *gorm.DB, a *model.StockAdjustment) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockAdjustment, error)
	List(ctx context.Context) ([]model.StockAdjustment, error)
	DB() *gorm.DB
}

type adjustmentRepo struct{ db *gorm.DB }

func NewStockAdjustmentRepository(db *gorm.DB) StockAdjustmentRepository {
	return &adjustmentRepo{db: db}
}

func (r *adjustmentRepo) CreateTx(tx *gorm.DB, a *model.StockAdjustment) error {
	return tx.Create(a).Error
}

func (r *adjustmentRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockAdjustment, error) {
	var adjustments []model.StockAdjustment
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&adjustments).Error
	return adjustments, err
}

func (r *adjustmentRepo) List(ctx context.Context) ([]model.StockAdjustment, error) {
	var adjustments []model.StockAdjustment
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&adjustments).Error
	return adjustments, err
}

func (r *adjustmentRepo) DB() *gorm.DB { return r.db }
