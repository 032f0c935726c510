package service

// In-memory repository stubs. The services under test run with a nil
// *gorm.DB, so runTx calls the unit of work directly and every Tx-suffixed
// method receives a nil tx the stubs ignore.

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errStubNotFound = errors.New("not found")

// ── Products ─────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) add(p *model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.add(p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errStubNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return errStubNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) LowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.StockQuantity <= p.MinStockLevel {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return errStubNotFound
	}
	p.StockQuantity += delta
	return nil
}

func (r *stubProductRepo) UpdateCostTx(_ *gorm.DB, id uuid.UUID, cost decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return errStubNotFound
	}
	p.UnitCost = cost
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Customers ────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) add(c *model.Customer) *model.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return c
}

func (r *stubCustomerRepo) Create(_ context.Context, _ *gorm.DB, c *model.Customer) error {
	r.add(c)
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errStubNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) UpdateBalanceTx(_ *gorm.DB, id uuid.UUID, balance decimal.Decimal) error {
	c, ok := r.customers[id]
	if !ok {
		return errStubNotFound
	}
	c.Balance = balance
	return nil
}

func (r *stubCustomerRepo) AllIDsTx(_ *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id := range r.customers {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *stubCustomerRepo) DB() *gorm.DB { return nil }

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── Suppliers ────────────────────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) add(s *model.Supplier) *model.Supplier {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return s
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.add(s)
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errStubNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) UpdateBalanceTx(_ *gorm.DB, id uuid.UUID, balance decimal.Decimal) error {
	s, ok := r.suppliers[id]
	if !ok {
		return errStubNotFound
	}
	s.Balance = balance
	return nil
}

func (r *stubSupplierRepo) AllIDsTx(_ *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id := range r.suppliers {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *stubSupplierRepo) DB() *gorm.DB { return nil }

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Customer movement log ────────────────────────────────────────────────────

type stubTransactionRepo struct {
	rows []model.Transaction
}

func (r *stubTransactionRepo) CreateTx(_ *gorm.DB, t *model.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *t)
	return nil
}

func (r *stubTransactionRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range r.rows {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) BalanceTx(_ *gorm.DB, customerID uuid.UUID) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, t := range r.rows {
		if t.CustomerID != customerID {
			continue
		}
		if t.Kind == "sale" {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}
	return balance, nil
}

func (r *stubTransactionRepo) DB() *gorm.DB { return nil }

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

// ── Supplier movement log ────────────────────────────────────────────────────

type stubSupplierTxRepo struct {
	rows []model.SupplierTransaction
}

func (r *stubSupplierTxRepo) CreateTx(_ *gorm.DB, t *model.SupplierTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *t)
	return nil
}

func (r *stubSupplierTxRepo) ListBySupplier(_ context.Context, supplierID uuid.UUID) ([]model.SupplierTransaction, error) {
	var out []model.SupplierTransaction
	for _, t := range r.rows {
		if t.SupplierID == supplierID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubSupplierTxRepo) BalanceTx(_ *gorm.DB, supplierID uuid.UUID) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, t := range r.rows {
		if t.SupplierID != supplierID {
			continue
		}
		if t.Kind == "purchase" {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}
	return balance, nil
}

func (r *stubSupplierTxRepo) DB() *gorm.DB { return nil }

var _ repository.SupplierTransactionRepository = (*stubSupplierTxRepo)(nil)

// ── Sales / Purchases ────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
		s.Items[i].SaleID = s.ID
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errStubNotFound
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	var out []model.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, _ *gorm.DB, p *model.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Items {
		if p.Items[i].ID == uuid.Nil {
			p.Items[i].ID = uuid.New()
		}
		p.Items[i].PurchaseID = p.ID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, errStubNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) List(_ context.Context, _ dto.PurchaseFilter) ([]model.Purchase, int64, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

// ── General ledger ───────────────────────────────────────────────────────────

type stubLedgerRepo struct {
	rows []model.GeneralLedgerEntry
}

func (r *stubLedgerRepo) CreateTx(_ *gorm.DB, e *model.GeneralLedgerEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *e)
	return nil
}

func (r *stubLedgerRepo) List(_ context.Context, filter dto.LedgerFilter) ([]model.GeneralLedgerEntry, int64, error) {
	var out []model.GeneralLedgerEntry
	for _, e := range r.rows {
		if filter.Kind != "" && filter.Kind != "all" && e.Kind != filter.Kind {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (r *stubLedgerRepo) Summary(_ context.Context) (decimal.Decimal, decimal.Decimal, error) {
	revenue, expenses := decimal.Zero, decimal.Zero
	for _, e := range r.rows {
		if e.Kind == "revenue" {
			revenue = revenue.Add(e.Amount)
		} else {
			expenses = expenses.Add(e.Amount)
		}
	}
	return revenue, expenses, nil
}

func (r *stubLedgerRepo) DB() *gorm.DB { return nil }

var _ repository.GeneralLedgerRepository = (*stubLedgerRepo)(nil)

// ── Stock adjustments ────────────────────────────────────────────────────────

type stubAdjustmentRepo struct {
	rows []model.StockAdjustment
}

func (r *stubAdjustmentRepo) CreateTx(_ *gorm.DB, a *model.StockAdjustment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *a)
	return nil
}

func (r *stubAdjustmentRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]model.StockAdjustment, error) {
	var out []model.StockAdjustment
	for _, a := range r.rows {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAdjustmentRepo) List(_ context.Context) ([]model.StockAdjustment, error) {
	return r.rows, nil
}

func (r *stubAdjustmentRepo) DB() *gorm.DB { return nil }

var _ repository.StockAdjustmentRepository = (*stubAdjustmentRepo)(nil)
