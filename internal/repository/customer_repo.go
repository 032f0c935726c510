package repository

import (
	"context"

	"github.com/mohamm188/Trend-phone/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	UpdateBalanceTx(tx *gorm.DB, id uuid.UUID, balance decimal.Decimal) error
	AllIDsTx(tx *gorm.DB) ([]uuid.UUID, error)
	DB() *gorm.DB
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Customer) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// UpdateBalanceTx persists a recomputed balance. Only the balance
// recalculation path may call this — the column is a derived cache.
func (r *customerRepo) UpdateBalanceTx(tx *gorm.DB, id uuid.UUID, balance decimal.Decimal) error {
	return tx.Model(&model.Customer{}).Where("id = ?", id).
		Update("balance", balance).Error
}

// AllIDsTx lists every customer id inside a transaction — used by the
// restore path to re-derive all balances.
func (r *customerRepo) AllIDsTx(tx *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Model(&model.Customer{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *customerRepo) DB() *gorm.DB { return r.db }
