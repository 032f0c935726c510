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
	"gorm.io/gorm"
)

// BackupService exports the full database as a typed snapshot and
// restores one atomically.
//
// Restore is replace-all-or-nothing: the snapshot is validated before a
// single row is touched, then every table is wiped and re-filled inside
// one transaction. A snapshot with an empty table empties that table —
// absence of rows is data, not an omission. All cached balances are
// re-derived from the restored movement logs before commit.
type BackupService interface {
	Export(ctx context.Context) (*dto.Snapshot, error)
	Restore(ctx context.Context, snap *dto.Snapshot) error
}

type backupService struct {
	backups   repository.BackupRepository
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
	credit    CreditService
}

func NewBackupService(
	backups repository.BackupRepository,
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
	credit CreditService,
) BackupService {
	return &backupService{
		backups:   backups,
		customers: customers,
		suppliers: suppliers,
		credit:    credit,
	}
}

func (s *backupService) Export(ctx context.Context) (*dto.Snapshot, error) {
	snap := &dto.Snapshot{ExportedAt: time.Now().UTC().Format(time.RFC3339)}

	var err error
	if snap.Products, err = s.backups.AllProducts(ctx); err != nil {
		return nil, err
	}
	if snap.Customers, err = s.backups.AllCustomers(ctx); err != nil {
		return nil, err
	}
	if snap.Suppliers, err = s.backups.AllSuppliers(ctx); err != nil {
		return nil, err
	}
	if snap.Sales, err = s.backups.AllSales(ctx); err != nil {
		return nil, err
	}
	if snap.SaleItems, err = s.backups.AllSaleItems(ctx); err != nil {
		return nil, err
	}
	if snap.Purchases, err = s.backups.AllPurchases(ctx); err != nil {
		return nil, err
	}
	if snap.PurchaseItems, err = s.backups.AllPurchaseItems(ctx); err != nil {
		return nil, err
	}
	if snap.Transactions, err = s.backups.AllTransactions(ctx); err != nil {
		return nil, err
	}
	if snap.SupplierTransactions, err = s.backups.AllSupplierTransactions(ctx); err != nil {
		return nil, err
	}
	if snap.LedgerEntries, err = s.backups.AllLedgerEntries(ctx); err != nil {
		return nil, err
	}
	if snap.StockAdjustments, err = s.backups.AllStockAdjustments(ctx); err != nil {
		return nil, err
	}

	log.Info().
		Int("products", len(snap.Products)).
		Int("sales", len(snap.Sales)).
		Int("purchases", len(snap.Purchases)).
		Msg("snapshot exported")

	return snap, nil
}

func (s *backupService) Restore(ctx context.Context, snap *dto.Snapshot) error {
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	err := runTx(ctx, s.backups.DB(), func(tx *gorm.DB) error {
		// Children before parents, so foreign keys never dangle mid-wipe.
		deleteOrder := []interface{}{
			&model.SaleItem{},
			&model.PurchaseItem{},
			&model.Transaction{},
			&model.SupplierTransaction{},
			&model.StockAdjustment{},
			&model.GeneralLedgerEntry{},
			&model.Sale{},
			&model.Purchase{},
			&model.Product{},
			&model.Customer{},
			&model.Supplier{},
		}
		for _, table := range deleteOrder {
			if err := s.backups.DeleteAllTx(tx, table); err != nil {
				return fmt.Errorf("restore: wipe %T: %w", table, err)
			}
		}

		// Parents before children on the way back in.
		inserts := []struct {
			name string
			rows interface{}
			n    int
		}{
			{"products", snap.Products, len(snap.Products)},
			{"customers", snap.Customers, len(snap.Customers)},
			{"suppliers", snap.Suppliers, len(snap.Suppliers)},
			{"sales", snap.Sales, len(snap.Sales)},
			{"sale_items", snap.SaleItems, len(snap.SaleItems)},
			{"purchases", snap.Purchases, len(snap.Purchases)},
			{"purchase_items", snap.PurchaseItems, len(snap.PurchaseItems)},
			{"transactions", snap.Transactions, len(snap.Transactions)},
			{"supplier_transactions", snap.SupplierTransactions, len(snap.SupplierTransactions)},
			{"general_ledger", snap.LedgerEntries, len(snap.LedgerEntries)},
			{"stock_adjustments", snap.StockAdjustments, len(snap.StockAdjustments)},
		}
		for _, ins := range inserts {
			if ins.n == 0 {
				continue
			}
			if err := s.backups.InsertBatchTx(tx, ins.rows); err != nil {
				return fmt.Errorf("restore: insert %s: %w", ins.name, err)
			}
		}

		// Cached balances are not trusted from the snapshot.
		customerIDs, err := s.customers.AllIDsTx(tx)
		if err != nil {
			return err
		}
		for _, id := range customerIDs {
			if _, err := s.credit.RecalcCustomerBalanceTx(tx, id); err != nil {
				return err
			}
		}
		supplierIDs, err := s.suppliers.AllIDsTx(tx)
		if err != nil {
			return err
		}
		for _, id := range supplierIDs {
			if _, err := s.credit.RecalcSupplierBalanceTx(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("products", len(snap.Products)).
		Int("customers", len(snap.Customers)).
		Int("suppliers", len(snap.Suppliers)).
		Msg("snapshot restored")

	return nil
}

// validateSnapshot rejects a snapshot before the restore touches the
// database: enum fields must hold known values and every reference must
// resolve within the snapshot itself.
func validateSnapshot(snap *dto.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot: empty payload")
	}

	products := make(map[uuid.UUID]bool, len(snap.Products))
	skus := make(map[string]bool, len(snap.Products))
	for i, p := range snap.Products {
		if p.Category != "phone" && p.Category != "accessory" {
			return fmt.Errorf("snapshot: products[%d]: unknown category %q", i, p.Category)
		}
		if skus[p.SKU] {
			return fmt.Errorf("snapshot: products[%d]: duplicate sku %q", i, p.SKU)
		}
		skus[p.SKU] = true
		products[p.ID] = true
	}

	customers := make(map[uuid.UUID]bool, len(snap.Customers))
	for _, c := range snap.Customers {
		customers[c.ID] = true
	}
	suppliers := make(map[uuid.UUID]bool, len(snap.Suppliers))
	for _, sup := range snap.Suppliers {
		suppliers[sup.ID] = true
	}

	sales := make(map[uuid.UUID]bool, len(snap.Sales))
	for i, sale := range snap.Sales {
		if !validPaymentStatus(sale.PaymentStatus) {
			return fmt.Errorf("snapshot: sales[%d]: unknown payment_status %q", i, sale.PaymentStatus)
		}
		if sale.CustomerID != nil && !customers[*sale.CustomerID] {
			return fmt.Errorf("snapshot: sales[%d]: unknown customer %s", i, sale.CustomerID)
		}
		sales[sale.ID] = true
	}
	purchases := make(map[uuid.UUID]bool, len(snap.Purchases))
	for i, p := range snap.Purchases {
		if !validPaymentStatus(p.PaymentStatus) {
			return fmt.Errorf("snapshot: purchases[%d]: unknown payment_status %q", i, p.PaymentStatus)
		}
		if !suppliers[p.SupplierID] {
			return fmt.Errorf("snapshot: purchases[%d]: unknown supplier %s", i, p.SupplierID)
		}
		purchases[p.ID] = true
	}

	for i, it := range snap.SaleItems {
		if !sales[it.SaleID] {
			return fmt.Errorf("snapshot: sale_items[%d]: unknown sale %s", i, it.SaleID)
		}
		if !products[it.ProductID] {
			return fmt.Errorf("snapshot: sale_items[%d]: unknown product %s", i, it.ProductID)
		}
	}
	for i, it := range snap.PurchaseItems {
		if !purchases[it.PurchaseID] {
			return fmt.Errorf("snapshot: purchase_items[%d]: unknown purchase %s", i, it.PurchaseID)
		}
		if !products[it.ProductID] {
			return fmt.Errorf("snapshot: purchase_items[%d]: unknown product %s", i, it.ProductID)
		}
	}

	for i, t := range snap.Transactions {
		if t.Kind != "sale" && t.Kind != "payment" {
			return fmt.Errorf("snapshot: transactions[%d]: unknown kind %q", i, t.Kind)
		}
		if !customers[t.CustomerID] {
			return fmt.Errorf("snapshot: transactions[%d]: unknown customer %s", i, t.CustomerID)
		}
	}
	for i, t := range snap.SupplierTransactions {
		if t.Kind != "purchase" && t.Kind != "payment" {
			return fmt.Errorf("snapshot: supplier_transactions[%d]: unknown kind %q", i, t.Kind)
		}
		if !suppliers[t.SupplierID] {
			return fmt.Errorf("snapshot: supplier_transactions[%d]: unknown supplier %s", i, t.SupplierID)
		}
	}
	for i, e := range snap.LedgerEntries {
		if e.Kind != "revenue" && e.Kind != "expense" {
			return fmt.Errorf("snapshot: general_ledger[%d]: unknown kind %q", i, e.Kind)
		}
	}
	for i, a := range snap.StockAdjustments {
		if a.Kind != "damaged" && a.Kind != "lost" && a.Kind != "correction" {
			return fmt.Errorf("snapshot: stock_adjustments[%d]: unknown kind %q", i, a.Kind)
		}
		if !products[a.ProductID] {
			return fmt.Errorf("snapshot: stock_adjustments[%d]: unknown product %s", i, a.ProductID)
		}
	}
	return nil
}

func validPaymentStatus(s string) bool {
	return s == "paid" || s == "partial" || s == "unpaid"
}
