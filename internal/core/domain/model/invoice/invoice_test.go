package invoice_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, name, code, barcode string, qty int) *invoice.InvoiceItem {
	t.Helper()
	item, err := invoice.NewInvoiceItem(
		kernel.NewUUID(), name, code, barcode, qty,
		decimal.NewFromFloat(9.50), "B-100", nil, "A1-03", "Acme Pharma", "10x10",
	)
	require.NoError(t, err)
	return item
}

func testInvoice(t *testing.T, items ...*invoice.InvoiceItem) *invoice.Invoice {
	t.Helper()
	if len(items) == 0 {
		items = append(items, testItem(t, "Paracetamol 500mg", "PARA-500", "890103", 10))
	}
	customer, err := invoice.NewCustomer("CUST-7", "City Pharmacy")
	require.NoError(t, err)

	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), "INV-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		customer, "R. Menon", invoice.PriorityMedium,
		decimal.NewFromFloat(95.00), "", "importer@example.com", time.Now(), items,
	)
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	t.Run("starts in Invoiced status with Normal billing", func(t *testing.T) {
		inv := testInvoice(t)

		assert.Equal(t, invoice.StatusInvoiced, inv.Status())
		assert.Equal(t, invoice.BillingNormal, inv.BillingStatus())
		assert.Equal(t, "INV-1", inv.Number())
		require.NoError(t, inv.Validate())
	})

	t.Run("rejects empty invoice number", func(t *testing.T) {
		customer, _ := invoice.NewCustomer("CUST-7", "City Pharmacy")
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), "", time.Now(), customer, "R. Menon",
			invoice.PriorityLow, decimal.Zero, "", "importer@example.com", time.Now(),
			[]*invoice.InvoiceItem{testItem(t, "X", "X-1", "", 1)},
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invoice without items", func(t *testing.T) {
		customer, _ := invoice.NewCustomer("CUST-7", "City Pharmacy")
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), "INV-2", time.Now(), customer, "R. Menon",
			invoice.PriorityLow, decimal.Zero, "", "importer@example.com", time.Now(), nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		customer, _ := invoice.NewCustomer("CUST-7", "City Pharmacy")
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), "INV-2", time.Now(), customer, "R. Menon",
			invoice.PriorityLow, decimal.NewFromInt(-1), "", "importer@example.com", time.Now(),
			[]*invoice.InvoiceItem{testItem(t, "X", "X-1", "", 1)},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var inv invoice.Invoice
		require.ErrorIs(t, inv.Validate(), invoice.ErrInvoiceIsNotConstructed)
	})
}

func TestNewInvoiceItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := invoice.NewInvoiceItem(
			kernel.NewUUID(), "X", "X-1", "", 0,
			decimal.Zero, "", nil, "", "", "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("barcode is optional", func(t *testing.T) {
		item := testItem(t, "X", "X-1", "", 3)
		assert.Empty(t, item.Barcode())
		assert.True(t, decimal.NewFromInt(3).Equal(item.RequiredQty()))
	})
}

func TestInvoice_Lifecycle(t *testing.T) {
	t.Run("walks the full forward path", func(t *testing.T) {
		inv := testInvoice(t)

		require.NoError(t, inv.StartPicking())
		assert.Equal(t, invoice.StatusPicking, inv.Status())

		require.NoError(t, inv.CompletePicking())
		require.NoError(t, inv.StartPacking())
		require.NoError(t, inv.CompletePacking())
		require.NoError(t, inv.StartDelivery())
		require.NoError(t, inv.CompleteDelivery())
		assert.Equal(t, invoice.StatusDelivered, inv.Status())
	})

	t.Run("cannot skip a stage", func(t *testing.T) {
		inv := testInvoice(t)

		err := inv.StartPacking()
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, invoice.StatusInvoiced, inv.Status())
	})

	t.Run("review and reopen", func(t *testing.T) {
		inv := testInvoice(t)
		require.NoError(t, inv.StartPicking())
		require.NoError(t, inv.CompletePicking())
		require.NoError(t, inv.StartPacking())
		require.NoError(t, inv.CompletePacking())

		require.NoError(t, inv.SendToReview())
		assert.Equal(t, invoice.StatusReview, inv.Status())
		assert.Equal(t, invoice.BillingReview, inv.BillingStatus())

		require.NoError(t, inv.Reopen(invoice.StatusPacking))
		assert.Equal(t, invoice.StatusPacking, inv.Status())
		assert.Equal(t, invoice.BillingReInvoiced, inv.BillingStatus())
	})
}

func TestRestoreInvoice(t *testing.T) {
	t.Run("restores persisted status", func(t *testing.T) {
		customer, _ := invoice.NewCustomer("CUST-7", "City Pharmacy")
		inv, err := invoice.RestoreInvoice(
			kernel.NewUUID(), "INV-9", time.Now(), customer, "R. Menon",
			invoice.PriorityHigh, decimal.NewFromInt(120), "urgent",
			invoice.StatusPacked, invoice.BillingReInvoiced,
			"importer@example.com", time.Now(),
			[]*invoice.InvoiceItem{testItem(t, "X", "X-1", "", 2)},
		)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusPacked, inv.Status())
		assert.Equal(t, invoice.BillingReInvoiced, inv.BillingStatus())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		customer, _ := invoice.NewCustomer("CUST-7", "City Pharmacy")
		_, err := invoice.RestoreInvoice(
			kernel.NewUUID(), "INV-9", time.Now(), customer, "R. Menon",
			invoice.PriorityHigh, decimal.NewFromInt(120), "",
			invoice.StatusUnknown, invoice.BillingNormal,
			"importer@example.com", time.Now(),
			[]*invoice.InvoiceItem{testItem(t, "X", "X-1", "", 2)},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestInvoice_ApplyCorrections(t *testing.T) {
	t.Run("matches by barcode first", func(t *testing.T) {
		existing := testItem(t, "Paracetamol 500mg", "PARA-500", "890103", 10)
		inv := testInvoice(t, existing)

		corrected := testItem(t, "Paracetamol 500mg", "PARA-500-R", "890103", 12)
		require.NoError(t, inv.ApplyCorrections(invoice.Corrections{
			Items: []*invoice.InvoiceItem{corrected},
		}))

		require.Len(t, inv.Items(), 1)
		assert.Equal(t, 12, inv.Items()[0].Quantity())
		assert.Equal(t, "PARA-500-R", inv.Items()[0].ItemCode())
		// Identity of the existing row is preserved.
		assert.Equal(t, existing.ID(), inv.Items()[0].ID())
	})

	t.Run("falls back to item code when barcode absent", func(t *testing.T) {
		existing := testItem(t, "Ibuprofen 200mg", "IBU-200", "", 4)
		inv := testInvoice(t, existing)

		corrected := testItem(t, "Ibuprofen 200mg", "IBU-200", "", 6)
		require.NoError(t, inv.ApplyCorrections(invoice.Corrections{
			Items: []*invoice.InvoiceItem{corrected},
		}))

		require.Len(t, inv.Items(), 1)
		assert.Equal(t, 6, inv.Items()[0].Quantity())
	})

	t.Run("inserts unmatched entries as new items", func(t *testing.T) {
		inv := testInvoice(t)

		extra := testItem(t, "Bandage", "BAND-1", "", 2)
		require.NoError(t, inv.ApplyCorrections(invoice.Corrections{
			Items: []*invoice.InvoiceItem{extra},
		}))

		assert.Len(t, inv.Items(), 2)
	})

	t.Run("replace mode deletes items absent from the payload", func(t *testing.T) {
		a := testItem(t, "A", "A-1", "", 1)
		b := testItem(t, "B", "B-1", "", 1)
		inv := testInvoice(t, a, b)

		keep := testItem(t, "A", "A-1", "", 5)
		require.NoError(t, inv.ApplyCorrections(invoice.Corrections{
			Items:        []*invoice.InvoiceItem{keep},
			ReplaceItems: true,
		}))

		require.Len(t, inv.Items(), 1)
		assert.Equal(t, "A-1", inv.Items()[0].ItemCode())
		assert.Equal(t, 5, inv.Items()[0].Quantity())
	})

	t.Run("corrects scalar fields without touching the number", func(t *testing.T) {
		inv := testInvoice(t)
		salesman := "J. Silva"
		total := decimal.NewFromInt(200)

		require.NoError(t, inv.ApplyCorrections(invoice.Corrections{
			SalesmanName: &salesman,
			TotalAmount:  &total,
		}))

		assert.Equal(t, "J. Silva", inv.SalesmanName())
		assert.True(t, total.Equal(inv.TotalAmount()))
		assert.Equal(t, "INV-1", inv.Number())
	})
}
