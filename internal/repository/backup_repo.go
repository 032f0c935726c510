package repository

import (
	"context"

	"github.com/mohamm188/Trend-phone/internal/model"

	"gorm.io/gorm"
)

// BackupRepository reads and replaces whole tables for the backup codec.
// The fixed table order and the replace-all-or-nothing guarantee live in
// the backup service; this layer only moves complete row sets.
type BackupRepository interface {
	AllProducts(ctx context.Context) ([]model.Product, error)
	AllCustomers(ctx context.Context) ([]model.Customer, error)
	AllSuppliers(ctx context.Context) ([]model.Supplier, error)
	AllSales(ctx context.Context) ([]model.Sale, error)
	AllSaleItems(ctx context.Context) ([]model.SaleItem, error)
	AllPurchases(ctx context.Context) ([]model.Purchase, error)
	AllPurchaseItems(ctx context.Context) ([]model.PurchaseItem, error)
	AllTransactions(ctx context.Context) ([]model.Transaction, error)
	AllSupplierTransactions(ctx context.Context) ([]model.SupplierTransaction, error)
	AllLedgerEntries(ctx context.Context) ([]model.GeneralLedgerEntry, error)
	AllStockAdjustments(ctx context.Context) ([]model.StockAdjustment, error)

	// DeleteAllTx wipes one table inside the restore transaction.
	DeleteAllTx(tx *gorm.DB, table interface{}) error
	// InsertBatchTx bulk-inserts snapshot rows inside the restore transaction.
	InsertBatchTx(tx *gorm.DB, rows interface{}) error

	DB() *gorm.DB
}

type backupRepo struct{ db *gorm.DB }

func NewBackupRepository(db *gorm.DB) BackupRepository { return &backupRepo{db: db} }

func (r *backupRepo) all(ctx context.Context, dest interface{}) error {
	return r.db.WithContext(ctx).Order("created_at ASC").Find(dest).Error
}

func (r *backupRepo) AllProducts(ctx context.Context) ([]model.Product, error) {
	var rows []model.Product
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllCustomers(ctx context.Context) ([]model.Customer, error) {
	var rows []model.Customer
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllSuppliers(ctx context.Context) ([]model.Supplier, error) {
	var rows []model.Supplier
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllSales(ctx context.Context) ([]model.Sale, error) {
	var rows []model.Sale
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllSaleItems(ctx context.Context) ([]model.SaleItem, error) {
	var rows []model.SaleItem
	return rows, r.db.WithContext(ctx).Find(&rows).Error
}

func (r *backupRepo) AllPurchases(ctx context.Context) ([]model.Purchase, error) {
	var rows []model.Purchase
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllPurchaseItems(ctx context.Context) ([]model.PurchaseItem, error) {
	var rows []model.PurchaseItem
	return rows, r.db.WithContext(ctx).Find(&rows).Error
}

func (r *backupRepo) AllTransactions(ctx context.Context) ([]model.Transaction, error) {
	var rows []model.Transaction
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllSupplierTransactions(ctx context.Context) ([]model.SupplierTransaction, error) {
	var rows []model.SupplierTransaction
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllLedgerEntries(ctx context.Context) ([]model.GeneralLedgerEntry, error) {
	var rows []model.GeneralLedgerEntry
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) AllStockAdjustments(ctx context.Context) ([]model.StockAdjustment, error) {
	var rows []model.StockAdjustment
	return rows, r.all(ctx, &rows)
}

func (r *backupRepo) DeleteAllTx(tx *gorm.DB, table interface{}) error {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error
}

func (r *backupRepo) InsertBatchTx(tx *gorm.DB, rows interface{}) error {
	return tx.CreateInBatches(rows, 500).Error
}

func (r *backupRepo) DB() *gorm.DB { return r.db }
