package services_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, name, code string, qty int) *invoice.InvoiceItem {
	t.Helper()
	item, err := invoice.NewInvoiceItem(kernel.NewUUID(), name, code, "", qty,
		decimal.NewFromInt(100), "", nil, "", "", "")
	require.NoError(t, err)
	return item
}

func testInvoice(t *testing.T, items ...*invoice.InvoiceItem) *invoice.Invoice {
	t.Helper()
	customer, err := invoice.NewCustomer("CUST-001", "Lanka Traders")
	require.NoError(t, err)
	inv, err := invoice.NewInvoice(kernel.NewUUID(), "INV-1001", time.Now(), customer,
		"S. Perera", invoice.PriorityMedium, decimal.NewFromInt(1000), "", "import", time.Now(), items)
	require.NoError(t, err)
	return inv
}

func TestBoxReconcilerReconcile(t *testing.T) {
	reconciler := services.NewBoxReconciler()
	sessionID := kernel.NewUUID()

	t.Run("should build boxes when quantities match exactly", func(t *testing.T) {
		itemA := testItem(t, "Paracetamol 500mg", "PARA-500", 10)
		itemB := testItem(t, "Vitamin C 1000mg", "VITC-1000", 4)
		inv := testInvoice(t, itemA, itemB)

		boxes, err := reconciler.Reconcile(inv, sessionID, []services.BoxProposal{
			{Items: []services.BoxItemProposal{
				{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(6)},
				{InvoiceItemID: itemB.ID(), Quantity: decimal.NewFromInt(4)},
			}},
			{Items: []services.BoxItemProposal{
				{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(4)},
			}},
		})

		require.NoError(t, err)
		require.Len(t, boxes, 2)
		assert.Equal(t, 1, boxes[0].Number())
		assert.Equal(t, 2, boxes[1].Number())
		assert.True(t, boxes[0].PackingSessionID().IsEqual(sessionID))
		assert.True(t, boxes[0].InvoiceID().IsEqual(inv.ID()))
		assert.False(t, boxes[0].Sealed())
		assert.True(t, boxes[0].TotalQuantity().Equal(decimal.NewFromInt(10)))
		assert.True(t, boxes[1].TotalQuantity().Equal(decimal.NewFromInt(4)))
	})

	t.Run("should reject empty proposal", func(t *testing.T) {
		inv := testInvoice(t, testItem(t, "Paracetamol 500mg", "PARA-500", 10))

		boxes, err := reconciler.Reconcile(inv, sessionID, nil)

		require.Error(t, err)
		assert.Nil(t, boxes)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should reject empty box", func(t *testing.T) {
		itemA := testItem(t, "Paracetamol 500mg", "PARA-500", 10)
		inv := testInvoice(t, itemA)

		boxes, err := reconciler.Reconcile(inv, sessionID, []services.BoxProposal{
			{Items: []services.BoxItemProposal{
				{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(10)},
			}},
			{},
		})

		require.Error(t, err)
		assert.Nil(t, boxes)
	})

	t.Run("should reject foreign item", func(t *testing.T) {
		itemA := testItem(t, "Paracetamol 500mg", "PARA-500", 10)
		inv := testInvoice(t, itemA)

		boxes, err := reconciler.Reconcile(inv, sessionID, []services.BoxProposal{
			{Items: []services.BoxItemProposal{
				{InvoiceItemID: kernel.NewUUID(), Quantity: decimal.NewFromInt(10)},
			}},
		})

		require.Error(t, err)
		assert.Nil(t, boxes)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		itemA := testItem(t, "Paracetamol 500mg", "PARA-500", 10)
		inv := testInvoice(t, itemA)

		_, err := reconciler.Reconcile(inv, sessionID, []services.BoxProposal{
			{Items: []services.BoxItemProposal{
				{InvoiceItemID: itemA.ID(), Quantity: decimal.Zero},
			}},
		})

		require.Error(t, err)
	})

	t.Run("should collect all quantity discrepancies", func(t *testing.T) {
		itemA := testItem(t, "Paracetamol 500mg", "PARA-500", 10)
		itemB := testItem(t, "Vitamin C 1000mg", "VITC-1000", 4)
		itemC := testItem(t, "Ibuprofen 200mg", "IBU-200", 6)
		inv := testInvoice(t, itemA, itemB, itemC)

		boxes, err := reconciler.Reconcile(inv, sessionID, []services.BoxProposal{
			{Items: []services.BoxItemProposal{
				{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(8)},
				{InvoiceItemID: itemB.ID(), Quantity: decimal.NewFromInt(5)},
			}},
		})

		require.Error(t, err)
		assert.Nil(t, boxes)

		var mismatch *errs.QuantityMismatchError
		require.True(t, errors.As(err, &mismatch))
		require.Len(t, mismatch.Discrepancies, 3)

		assert.Equal(t, "Paracetamol 500mg", mismatch.Discrepancies[0].ItemName)
		assert.True(t, mismatch.Discrepancies[0].Assigned.Equal(decimal.NewFromInt(8)))
		assert.True(t, mismatch.Discrepancies[0].Required.Equal(decimal.NewFromInt(10)))

		assert.Equal(t, "Vitamin C 1000mg", mismatch.Discrepancies[1].ItemName)
		assert.True(t, mismatch.Discrepancies[1].Assigned.Equal(decimal.NewFromInt(5)))

		// item C never assigned at all
		assert.Equal(t, "Ibuprofen 200mg", mismatch.Discrepancies[2].ItemName)
		assert.True(t, mismatch.Discrepancies[2].Assigned.IsZero())

		assert.Contains(t, err.Error(), "Paracetamol 500mg: 8 assigned, 10 required, missing 2")
		assert.Contains(t, err.Error(), "Vitamin C 1000mg: 5 assigned, 4 required, excess 1")
	})

	t.Run("should reject duplicate item lines within one box", func(t *testing.T) {
		itemA := testItem(t, "Paracetamol 500mg", "PARA-500", 10)
		inv := testInvoice(t, itemA)

		// the lines sum to the invoiced quantity, but one box may list an
		// item only once
		boxes, err := reconciler.Reconcile(inv, sessionID, []services.BoxProposal{
			{Items: []services.BoxItemProposal{
				{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(6)},
				{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(4)},
			}},
		})

		require.Error(t, err)
		assert.Nil(t, boxes)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("should sum split quantities across boxes", func(t *testing.T) {
		itemA := testItem(t, "Paracetamol 500mg", "PARA-500", 9)
		inv := testInvoice(t, itemA)

		boxes, err := reconciler.Reconcile(inv, sessionID, []services.BoxProposal{
			{Items: []services.BoxItemProposal{{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(3)}}},
			{Items: []services.BoxItemProposal{{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(3)}}},
			{Items: []services.BoxItemProposal{{InvoiceItemID: itemA.ID(), Quantity: decimal.NewFromInt(3)}}},
		})

		require.NoError(t, err)
		assert.Len(t, boxes, 3)
	})

	t.Run("should reject invoice that is not constructed", func(t *testing.T) {
		var inv invoice.Invoice

		_, err := reconciler.Reconcile(&inv, sessionID, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, invoice.ErrInvoiceIsNotConstructed)
	})
}
