package services

import (
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// BoxItemProposal is one operator-entered box line: which invoice item goes
// into the box and how much of it.
type BoxItemProposal struct {
	InvoiceItemID kernel.UUID
	Quantity      decimal.Decimal
}

// BoxProposal is one operator-entered box. Boxes are numbered by their order
// in the proposal.
type BoxProposal struct {
	Items []BoxItemProposal
}

// BoxReconciler is a domain service that verifies a set of proposed boxes
// against the invoice line items before packing can complete.
//
// Business rules:
//   - Every box must contain at least one line with a positive quantity
//   - Every box line must reference an item of the invoice being packed
//   - Within one box an item appears on at most one line
//   - Summed per item across all boxes, assigned quantity must exactly equal
//     the invoiced quantity; partial packing is not a thing
//   - All quantity violations are reported together, not just the first one
//
// Boxes are only materialized when the whole proposal reconciles. A failed
// reconciliation leaves no boxes behind.
type BoxReconciler struct{}

// NewBoxReconciler creates a new BoxReconciler instance.
func NewBoxReconciler() BoxReconciler {
	return BoxReconciler{}
}

// Reconcile checks the proposed boxes against the invoice and, on success,
// builds the Box aggregates for the given packing session.
//
// Structural problems (no boxes, an empty box, a non-positive quantity, a
// duplicated item line, a line referencing an item not on the invoice) fail
// immediately. Quantity discrepancies are accumulated across every invoice
// item and returned together as a single QuantityMismatchError.
func (r BoxReconciler) Reconcile(
	inv *invoice.Invoice,
	packingSessionID kernel.UUID,
	proposals []BoxProposal,
) ([]*packing.Box, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := packingSessionID.Validate(); err != nil {
		return nil, err
	}
	if len(proposals) == 0 {
		return nil, errs.NewValueIsRequiredError("boxes")
	}

	assigned := make(map[kernel.UUID]decimal.Decimal, len(inv.Items()))
	boxes := make([]*packing.Box, 0, len(proposals))

	for i, proposal := range proposals {
		if len(proposal.Items) == 0 {
			return nil, errs.NewValueIsRequiredError("box items")
		}

		boxItems := make([]packing.BoxItem, 0, len(proposal.Items))
		seen := make(map[kernel.UUID]struct{}, len(proposal.Items))
		for _, line := range proposal.Items {
			if inv.ItemByID(line.InvoiceItemID) == nil {
				return nil, errs.NewValueIsInvalidError("box item does not belong to invoice")
			}
			if _, dup := seen[line.InvoiceItemID]; dup {
				return nil, errs.NewValueIsInvalidError("box lists the same item more than once")
			}
			seen[line.InvoiceItemID] = struct{}{}

			boxItem, err := packing.NewBoxItem(line.InvoiceItemID, line.Quantity)
			if err != nil {
				return nil, err
			}

			boxItems = append(boxItems, boxItem)
			assigned[line.InvoiceItemID] = assigned[line.InvoiceItemID].Add(line.Quantity)
		}

		box, err := packing.NewBox(kernel.NewUUID(), packingSessionID, inv.ID(), i+1, boxItems)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, box)
	}

	if discrepancies := r.findDiscrepancies(inv, assigned); len(discrepancies) > 0 {
		return nil, errs.NewQuantityMismatchError(discrepancies)
	}

	return boxes, nil
}

// findDiscrepancies compares the assigned quantities against the invoice,
// item by item, in invoice line order.
func (r BoxReconciler) findDiscrepancies(
	inv *invoice.Invoice,
	assigned map[kernel.UUID]decimal.Decimal,
) []errs.QuantityDiscrepancy {
	var discrepancies []errs.QuantityDiscrepancy

	for _, item := range inv.Items() {
		got := assigned[item.ID()]
		required := item.RequiredQty()
		if got.Equal(required) {
			continue
		}

		discrepancies = append(discrepancies, errs.QuantityDiscrepancy{
			ItemName: item.Name(),
			ItemCode: item.ItemCode(),
			Required: required,
			Assigned: got,
		})
	}

	return discrepancies
}
