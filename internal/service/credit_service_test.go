package service

import (
	"context"
	"testing"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type creditFixture struct {
	svc       CreditService
	customers *stubCustomerRepo
	suppliers *stubSupplierRepo
	txs       *stubTransactionRepo
	supTxs    *stubSupplierTxRepo
}

func newCreditFixture() *creditFixture {
	customers := newStubCustomerRepo()
	suppliers := newStubSupplierRepo()
	txs := &stubTransactionRepo{}
	supTxs := &stubSupplierTxRepo{}
	return &creditFixture{
		svc:       NewCreditService(customers, suppliers, txs, supTxs),
		customers: customers,
		suppliers: suppliers,
		txs:       txs,
		supTxs:    supTxs,
	}
}

func TestRecordCustomerPayment_AppendsRowAndRecomputesBalance(t *testing.T) {
	f := newCreditFixture()
	c := f.customers.add(&model.Customer{Name: "Ali"})
	require.NoError(t, f.txs.CreateTx(nil, &model.Transaction{
		CustomerID: c.ID, Kind: "sale", Amount: dec("100.00"),
	}))

	resp, err := f.svc.RecordCustomerPayment(context.Background(), c.ID, dto.RecordPaymentRequest{
		Amount: dec("30.00"), Description: "cash installment",
	})
	require.NoError(t, err)

	assert.Equal(t, "payment", resp.Kind)
	require.Len(t, f.txs.rows, 2)
	assert.True(t, c.Balance.Equal(dec("70.00")), "balance = %s", c.Balance)
}

func TestRecordCustomerPayment_OverpaymentGoesNegative(t *testing.T) {
	// A credit in the customer's favor is legal — the balance just holds it.
	f := newCreditFixture()
	c := f.customers.add(&model.Customer{Name: "Ali"})

	_, err := f.svc.RecordCustomerPayment(context.Background(), c.ID, dto.RecordPaymentRequest{
		Amount: dec("25.00"),
	})
	require.NoError(t, err)
	assert.True(t, c.Balance.Equal(dec("-25.00")), "balance = %s", c.Balance)
}

func TestRecordCustomerPayment_NonPositiveAmountRejected(t *testing.T) {
	f := newCreditFixture()
	c := f.customers.add(&model.Customer{Name: "Ali"})

	_, err := f.svc.RecordCustomerPayment(context.Background(), c.ID, dto.RecordPaymentRequest{Amount: dec("0")})
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.svc.RecordCustomerPayment(context.Background(), c.ID, dto.RecordPaymentRequest{Amount: dec("-5.00")})
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, f.txs.rows)
}

func TestRecordCustomerPayment_UnknownCustomer(t *testing.T) {
	f := newCreditFixture()
	_, err := f.svc.RecordCustomerPayment(context.Background(), uuid.New(), dto.RecordPaymentRequest{Amount: dec("10.00")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordSupplierPayment_AppendsRowAndRecomputesBalance(t *testing.T) {
	f := newCreditFixture()
	sup := f.suppliers.add(&model.Supplier{Name: "Acme Wholesale"})
	require.NoError(t, f.supTxs.CreateTx(nil, &model.SupplierTransaction{
		SupplierID: sup.ID, Kind: "purchase", Amount: dec("450.00"),
	}))

	_, err := f.svc.RecordSupplierPayment(context.Background(), sup.ID, dto.RecordPaymentRequest{
		Amount: dec("200.00"),
	})
	require.NoError(t, err)
	assert.True(t, sup.Balance.Equal(dec("250.00")), "balance = %s", sup.Balance)
}

func TestCustomerStatement(t *testing.T) {
	f := newCreditFixture()
	c := f.customers.add(&model.Customer{Name: "Ali", Balance: dec("70.00")})
	require.NoError(t, f.txs.CreateTx(nil, &model.Transaction{
		CustomerID: c.ID, Kind: "sale", Amount: dec("100.00"), Description: "Sale abc12345",
	}))
	require.NoError(t, f.txs.CreateTx(nil, &model.Transaction{
		CustomerID: c.ID, Kind: "payment", Amount: dec("30.00"),
	}))

	stmt, err := f.svc.CustomerStatement(context.Background(), c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID.String(), stmt.PartyID)
	assert.True(t, stmt.Balance.Equal(dec("70.00")))
	require.Len(t, stmt.Transactions, 2)
	assert.Equal(t, "sale", stmt.Transactions[0].Kind)
	assert.Equal(t, "payment", stmt.Transactions[1].Kind)
}

func TestSupplierStatement_EmptyHistory(t *testing.T) {
	f := newCreditFixture()
	sup := f.suppliers.add(&model.Supplier{Name: "Acme Wholesale"})

	stmt, err := f.svc.SupplierStatement(context.Background(), sup.ID)
	require.NoError(t, err)
	assert.True(t, stmt.Balance.IsZero())
	assert.Empty(t, stmt.Transactions)
}
