package infra

import (
	"fmt"

	"github.com/mohamm188/Trend-phone/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// ledger schema. The returned handle is the single store instance for the
// process: it is constructed once here and injected into repositories —
// never accessed as ambient global state. Close it via CloseDatabase on
// shutdown.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// CloseDatabase releases the underlying connection pool.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RunMigrations creates/updates all ledger tables. Order matters: parents
// before children so AutoMigrate can create foreign keys in one pass.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Sale{},
		&model.SaleItem{},
		&model.Purchase{},
		&model.PurchaseItem{},
		&model.Transaction{},
		&model.SupplierTransaction{},
		&model.GeneralLedgerEntry{},
		&model.StockAdjustment{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index backing the low-stock query (query-time predicate,
		// never a stored flag).
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_products_low_stock') THEN
		    CREATE INDEX idx_products_low_stock
		        ON products (stock_quantity)
		        WHERE stock_quantity <= min_stock_level;
		  END IF;
		END $$`,
		// Movement-log aggregation index: balance recomputation scans one
		// party's full history on every mutating unit.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_transactions_customer_kind') THEN
		    CREATE INDEX idx_transactions_customer_kind ON transactions (customer_id, kind);
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_supplier_transactions_supplier_kind') THEN
		    CREATE INDEX idx_supplier_transactions_supplier_kind ON supplier_transactions (supplier_id, kind);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
