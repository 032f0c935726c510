package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mohamm188/Trend-phone/internal/config"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	svc       SaleService
	products  *stubProductRepo
	customers *stubCustomerRepo
	txs       *stubTransactionRepo
	sales     *stubSaleRepo
}

func newSaleFixture(stockPolicy string) *saleFixture {
	products := newStubProductRepo()
	customers := newStubCustomerRepo()
	suppliers := newStubSupplierRepo()
	txs := &stubTransactionRepo{}
	supTxs := &stubSupplierTxRepo{}
	sales := newStubSaleRepo()
	adjustments := &stubAdjustmentRepo{}

	inventory := NewInventoryService(products, adjustments, stockPolicy)
	credit := NewCreditService(customers, suppliers, txs, supTxs)
	svc := NewSaleService(sales, products, customers, txs, inventory, credit, nil, "")

	return &saleFixture{
		svc:       svc,
		products:  products,
		customers: customers,
		txs:       txs,
		sales:     sales,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (f *saleFixture) seedProduct(stock int, price string) *model.Product {
	return f.products.add(&model.Product{
		SKU:           "IPH-15-128",
		Name:          "iPhone 15 128GB",
		Category:      "phone",
		SalePrice:     dec(price),
		UnitCost:      dec("700.00"),
		StockQuantity: stock,
		MinStockLevel: 5,
	})
}

func TestRecordSale_WalkInDecrementsStockAndLogsNothing(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	p := f.seedProduct(10, "850.00")

	resp, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 2, UnitPrice: dec("850.00")},
		},
		TotalAmount:   dec("1700.00"),
		PaymentStatus: "paid",
	})
	require.NoError(t, err)

	assert.Equal(t, 8, p.StockQuantity)
	assert.Empty(t, f.txs.rows, "walk-in sales must not touch the customer ledger")
	assert.Nil(t, resp.CustomerID)
	assert.Equal(t, "cash", resp.PaymentMethod)
	assert.True(t, resp.TotalAmount.Equal(dec("1700.00")))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "iPhone 15 128GB", resp.Items[0].Product)
	assert.True(t, resp.Items[0].Subtotal.Equal(dec("1700.00")))
}

func TestRecordSale_UnpaidCreditRaisesBalance(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	p := f.seedProduct(10, "50.00")
	c := f.customers.add(&model.Customer{Name: "Ali"})
	cid := c.ID.String()

	_, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		CustomerID: &cid,
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 1, UnitPrice: dec("50.00")},
		},
		TotalAmount:   dec("50.00"),
		PaymentStatus: "unpaid",
	})
	require.NoError(t, err)

	require.Len(t, f.txs.rows, 1)
	assert.Equal(t, "sale", f.txs.rows[0].Kind)
	assert.True(t, f.txs.rows[0].Amount.Equal(dec("50.00")))
	assert.True(t, c.Balance.Equal(dec("50.00")), "balance = %s", c.Balance)
}

func TestRecordSale_PaidCreditNetsToZero(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	p := f.seedProduct(10, "50.00")
	c := f.customers.add(&model.Customer{Name: "Ali"})
	cid := c.ID.String()

	_, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		CustomerID: &cid,
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 1, UnitPrice: dec("50.00")},
		},
		TotalAmount:   dec("50.00"),
		PaymentStatus: "paid",
	})
	require.NoError(t, err)

	// Debt and settlement both land in the log; the derived balance is zero.
	require.Len(t, f.txs.rows, 2)
	assert.Equal(t, "sale", f.txs.rows[0].Kind)
	assert.Equal(t, "payment", f.txs.rows[1].Kind)
	assert.True(t, c.Balance.IsZero(), "balance = %s", c.Balance)
}

func TestRecordSale_DiscountCountsTowardTotal(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	p := f.seedProduct(10, "100.00")

	resp, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 2, UnitPrice: dec("100.00")},
		},
		Discount:      dec("15.00"),
		TotalAmount:   dec("185.00"),
		PaymentStatus: "paid",
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(dec("185.00")))
}

func TestRecordSale_TotalMismatchRejected(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	p := f.seedProduct(10, "850.00")

	_, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 2, UnitPrice: dec("850.00")},
		},
		TotalAmount:   dec("1000.00"),
		PaymentStatus: "paid",
	})
	require.ErrorIs(t, err, ErrTotalMismatch)

	assert.Equal(t, 10, p.StockQuantity, "a rejected sale must not move stock")
	assert.Empty(t, f.sales.sales)
}

func TestRecordSale_UnknownProductRejectedBeforeWrites(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)

	_, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: dec("10.00")},
		},
		TotalAmount:   dec("10.00"),
		PaymentStatus: "paid",
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.sales.sales)
}

func TestRecordSale_UnknownCustomerRejected(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	p := f.seedProduct(10, "10.00")
	ghost := uuid.NewString()

	_, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		CustomerID: &ghost,
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 1, UnitPrice: dec("10.00")},
		},
		TotalAmount:   dec("10.00"),
		PaymentStatus: "unpaid",
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 10, p.StockQuantity)
}

func TestRecordSale_AllowPolicyLetsStockGoNegative(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	p := f.seedProduct(1, "20.00")

	_, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 3, UnitPrice: dec("20.00")},
		},
		TotalAmount:   dec("60.00"),
		PaymentStatus: "paid",
	})
	require.NoError(t, err)
	assert.Equal(t, -2, p.StockQuantity)
}

func TestRecordSale_RejectPolicyBlocksOversell(t *testing.T) {
	f := newSaleFixture(config.StockPolicyReject)
	p := f.seedProduct(1, "20.00")

	_, err := f.svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 3, UnitPrice: dec("20.00")},
		},
		TotalAmount:   dec("60.00"),
		PaymentStatus: "paid",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.Equal(t, 1, p.StockQuantity)
}

func TestGetSale_NotFound(t *testing.T) {
	f := newSaleFixture(config.StockPolicyAllow)
	_, err := f.svc.GetSale(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
