package invoice_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(invoice.StatusUnknown))
		assert.Equal(t, 1, int(invoice.StatusInvoiced))
		assert.Equal(t, 2, int(invoice.StatusPicking))
		assert.Equal(t, 3, int(invoice.StatusPicked))
		assert.Equal(t, 4, int(invoice.StatusPacking))
		assert.Equal(t, 5, int(invoice.StatusPacked))
		assert.Equal(t, 6, int(invoice.StatusDispatched))
		assert.Equal(t, 7, int(invoice.StatusDelivered))
		assert.Equal(t, 8, int(invoice.StatusReview))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []invoice.Status{
			invoice.StatusInvoiced,
			invoice.StatusPicking,
			invoice.StatusPicked,
			invoice.StatusPacking,
			invoice.StatusPacked,
			invoice.StatusDispatched,
			invoice.StatusDelivered,
			invoice.StatusReview,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := invoice.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		require.Error(t, invoice.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Invoiced", invoice.StatusInvoiced.String())
	assert.Equal(t, "Picking", invoice.StatusPicking.String())
	assert.Equal(t, "Picked", invoice.StatusPicked.String())
	assert.Equal(t, "Packing", invoice.StatusPacking.String())
	assert.Equal(t, "Packed", invoice.StatusPacked.String())
	assert.Equal(t, "Dispatched", invoice.StatusDispatched.String())
	assert.Equal(t, "Delivered", invoice.StatusDelivered.String())
	assert.Equal(t, "Review", invoice.StatusReview.String())
	assert.Equal(t, "Unknown", invoice.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, status := range []invoice.Status{
			invoice.StatusInvoiced,
			invoice.StatusPicking,
			invoice.StatusPicked,
			invoice.StatusPacking,
			invoice.StatusPacked,
			invoice.StatusDispatched,
			invoice.StatusDelivered,
			invoice.StatusReview,
		} {
			parsed, err := invoice.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := invoice.StatusFromString("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ForwardTransitions(t *testing.T) {
	transitions := []struct {
		name string
		from invoice.Status
		to   invoice.Status
		op   func(invoice.Status) (invoice.Status, error)
	}{
		{"start picking", invoice.StatusInvoiced, invoice.StatusPicking, invoice.Status.StartPicking},
		{"complete picking", invoice.StatusPicking, invoice.StatusPicked, invoice.Status.CompletePicking},
		{"start packing", invoice.StatusPicked, invoice.StatusPacking, invoice.Status.StartPacking},
		{"complete packing", invoice.StatusPacking, invoice.StatusPacked, invoice.Status.CompletePacking},
		{"start delivery", invoice.StatusPacked, invoice.StatusDispatched, invoice.Status.StartDelivery},
		{"complete delivery", invoice.StatusDispatched, invoice.StatusDelivered, invoice.Status.CompleteDelivery},
	}

	allStatuses := []invoice.Status{
		invoice.StatusUnknown,
		invoice.StatusInvoiced,
		invoice.StatusPicking,
		invoice.StatusPicked,
		invoice.StatusPacking,
		invoice.StatusPacked,
		invoice.StatusDispatched,
		invoice.StatusDelivered,
		invoice.StatusReview,
	}

	for _, tc := range transitions {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.op(tc.from)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)

			// Every other predecessor is rejected: no stage may be skipped.
			for _, from := range allStatuses {
				if from == tc.from {
					continue
				}
				_, err := tc.op(from)
				require.Error(t, err, "%s from %s must fail", tc.name, from)
				require.ErrorIs(t, err, errs.ErrInvalidState)
			}
		})
	}

	t.Run("packing cannot start on a freshly imported invoice", func(t *testing.T) {
		_, err := invoice.StatusInvoiced.StartPacking()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStatus_SendToReview(t *testing.T) {
	t.Run("reachable from every in-flight status", func(t *testing.T) {
		for _, from := range []invoice.Status{
			invoice.StatusPicking,
			invoice.StatusPicked,
			invoice.StatusPacking,
			invoice.StatusPacked,
			invoice.StatusDispatched,
		} {
			next, err := from.SendToReview()
			require.NoError(t, err)
			assert.Equal(t, invoice.StatusReview, next)
			assert.True(t, from.CanReturnToBilling())
		}
	})

	t.Run("unreachable from Invoiced, Delivered, and Review", func(t *testing.T) {
		for _, from := range []invoice.Status{
			invoice.StatusInvoiced,
			invoice.StatusDelivered,
			invoice.StatusReview,
		} {
			_, err := from.SendToReview()
			require.ErrorIs(t, err, errs.ErrInvalidState)
			assert.False(t, from.CanReturnToBilling())
		}
	})
}

func TestStatus_Reopen(t *testing.T) {
	t.Run("review reopens to a stage restart point", func(t *testing.T) {
		for _, target := range []invoice.Status{
			invoice.StatusPicking,
			invoice.StatusPacking,
			invoice.StatusPacked,
		} {
			next, err := invoice.StatusReview.Reopen(target)
			require.NoError(t, err)
			assert.Equal(t, target, next)
		}
	})

	t.Run("only review can be reopened", func(t *testing.T) {
		_, err := invoice.StatusPacked.Reopen(invoice.StatusPacking)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("cannot reopen past the return point", func(t *testing.T) {
		for _, target := range []invoice.Status{
			invoice.StatusDispatched,
			invoice.StatusDelivered,
			invoice.StatusInvoiced,
		} {
			_, err := invoice.StatusReview.Reopen(target)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_DeliveredIsTerminal(t *testing.T) {
	ops := map[string]func(invoice.Status) (invoice.Status, error){
		"start picking":     invoice.Status.StartPicking,
		"complete picking":  invoice.Status.CompletePicking,
		"start packing":     invoice.Status.StartPacking,
		"complete packing":  invoice.Status.CompletePacking,
		"start delivery":    invoice.Status.StartDelivery,
		"complete delivery": invoice.Status.CompleteDelivery,
		"send to review":    invoice.Status.SendToReview,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			_, err := op(invoice.StatusDelivered)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		})
	}
}
