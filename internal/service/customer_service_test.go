package service

import (
	"context"
	"testing"

	"github.com/mohamm188/Trend-phone/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerFixture() (CustomerService, *stubCustomerRepo, *stubTransactionRepo) {
	customers := newStubCustomerRepo()
	suppliers := newStubSupplierRepo()
	txs := &stubTransactionRepo{}
	supTxs := &stubSupplierTxRepo{}
	credit := NewCreditService(customers, suppliers, txs, supTxs)
	return NewCustomerService(customers, txs, credit), customers, txs
}

func TestCreateCustomer_OpeningBalanceBecomesFirstLogRow(t *testing.T) {
	svc, customers, txs := newCustomerFixture()

	resp, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:           "Ali",
		OpeningBalance: dec("120.00"),
	})
	require.NoError(t, err)

	require.Len(t, txs.rows, 1)
	assert.Equal(t, "sale", txs.rows[0].Kind)
	assert.True(t, txs.rows[0].Amount.Equal(dec("120.00")))
	assert.Equal(t, "Opening balance", txs.rows[0].Description)

	id := uuid.MustParse(resp.ID)
	c, err := customers.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, c.Balance.Equal(dec("120.00")), "balance = %s", c.Balance)
	assert.True(t, resp.Balance.Equal(dec("120.00")))
}

func TestCreateCustomer_ZeroOpeningBalanceLogsNothing(t *testing.T) {
	svc, _, txs := newCustomerFixture()

	resp, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:           "Walk In Regular",
		OpeningBalance: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Empty(t, txs.rows)
	assert.True(t, resp.Balance.IsZero())
}

func TestUpdateCustomer_KeepsBalanceFields(t *testing.T) {
	svc, customers, _ := newCustomerFixture()
	created, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:           "Ali",
		OpeningBalance: dec("50.00"),
	})
	require.NoError(t, err)

	phone := "0912345678"
	id := uuid.MustParse(created.ID)
	updated, err := svc.Update(context.Background(), id, dto.UpdateCustomerRequest{
		Name:  "Ali M.",
		Phone: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ali M.", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	// Update never touches the ledger-derived fields.
	c, _ := customers.FindByID(context.Background(), id)
	assert.True(t, c.Balance.Equal(dec("50.00")))
	assert.True(t, c.OpeningBalance.Equal(dec("50.00")))
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc, _, _ := newCustomerFixture()
	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
