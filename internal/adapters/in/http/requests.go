package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ImportInvoiceRequest is the payload pushed in by the billing system.
type ImportInvoiceRequest struct {
	InvoiceNo    string               `json:"invoice_no"`
	Date         time.Time            `json:"date"`
	CustomerCode string               `json:"customer_code"`
	CustomerName string               `json:"customer_name"`
	SalesmanName string               `json:"salesman_name"`
	Priority     string               `json:"priority"`
	TotalAmount  decimal.Decimal      `json:"total_amount"`
	Remarks      string               `json:"remarks"`
	CreatedBy    string               `json:"created_by"`
	Items        []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest is one invoice line in an import or correction payload.
type InvoiceItemRequest struct {
	Name          string          `json:"name"`
	ItemCode      string          `json:"item_code"`
	Barcode       string          `json:"barcode"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	BatchNo       string          `json:"batch_no"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
	ShelfLocation string          `json:"shelf_location"`
	Company       string          `json:"company"`
	PackingSize   string          `json:"packing_size"`
}

func toCommandItems(items []InvoiceItemRequest) []commands.ImportInvoiceItem {
	result := make([]commands.ImportInvoiceItem, len(items))
	for i, item := range items {
		result[i] = commands.ImportInvoiceItem{
			Name:          item.Name,
			ItemCode:      item.ItemCode,
			Barcode:       item.Barcode,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			BatchNo:       item.BatchNo,
			ExpiryDate:    item.ExpiryDate,
			ShelfLocation: item.ShelfLocation,
			Company:       item.Company,
			PackingSize:   item.PackingSize,
		}
	}

	return result
}

// StartStageRequest opens a picking or packing session on an invoice.
type StartStageRequest struct {
	UserEmail string `json:"user_email"`
	Notes     string `json:"notes"`
}

// CompletePickingRequest closes a picking session.
type CompletePickingRequest struct {
	UserEmail string `json:"user_email"`
	Repick    bool   `json:"repick"`
}

// CompletePackingRequest closes a packing session with the operator's box
// breakdown.
type CompletePackingRequest struct {
	UserEmail            string       `json:"user_email"`
	Boxes                []BoxRequest `json:"boxes"`
	HoldForConsolidation bool         `json:"hold_for_consolidation"`
	Repack               bool         `json:"repack"`
}

// BoxRequest is one box in a packing completion payload. Boxes are numbered
// by their order in the request.
type BoxRequest struct {
	Items []BoxItemRequest `json:"items"`
}

// BoxItemRequest assigns a quantity of one invoice line to a box.
type BoxItemRequest struct {
	InvoiceItemID string          `json:"invoice_item_id"`
	Quantity      decimal.Decimal `json:"quantity"`
}

func toBoxProposals(boxes []BoxRequest) ([]services.BoxProposal, error) {
	proposals := make([]services.BoxProposal, len(boxes))
	for i, box := range boxes {
		items := make([]services.BoxItemProposal, len(box.Items))
		for j, item := range box.Items {
			itemID, err := kernel.UUIDFromString(item.InvoiceItemID)
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("invoice_item_id", err)
			}

			items[j] = services.BoxItemProposal{
				InvoiceItemID: itemID,
				Quantity:      item.Quantity,
			}
		}

		proposals[i] = services.BoxProposal{Items: items}
	}

	return proposals, nil
}

// StartDeliveryRequest dispatches a packed invoice.
type StartDeliveryRequest struct {
	UserEmail     string `json:"user_email"`
	DeliveryType  string `json:"delivery_type"`
	CounterPickup bool   `json:"counter_pickup"`
	PickupPerson  string `json:"pickup_person"`
	PickupCompany string `json:"pickup_company"`
	Notes         string `json:"notes"`
}

// CompleteDeliveryRequest confirms delivery of a dispatched invoice.
type CompleteDeliveryRequest struct {
	UserEmail   string   `json:"user_email"`
	CourierName string   `json:"courier_name"`
	TrackingNo  string   `json:"tracking_no"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

// ReturnToBillingRequest sends an invoice back to billing for review.
type ReturnToBillingRequest struct {
	UserEmail string `json:"user_email"`
	Reason    string `json:"reason"`
}

// ResolveInvoiceRequest closes an open return, optionally correcting the
// invoice before it re-enters the workflow.
type ResolveInvoiceRequest struct {
	UserEmail   string              `json:"user_email"`
	Note        string              `json:"note"`
	Corrections *CorrectionsRequest `json:"corrections"`
}

// CorrectionsRequest carries the invoice fields billing changed while
// resolving a return. Nil fields are left untouched.
type CorrectionsRequest struct {
	Date         *time.Time           `json:"date"`
	CustomerCode *string              `json:"customer_code"`
	CustomerName *string              `json:"customer_name"`
	SalesmanName *string              `json:"salesman_name"`
	Priority     *string              `json:"priority"`
	TotalAmount  *decimal.Decimal     `json:"total_amount"`
	Remarks      *string              `json:"remarks"`
	Items        []InvoiceItemRequest `json:"items"`
	ReplaceItems bool                 `json:"replace_items"`
}

func (r *CorrectionsRequest) toCommandCorrections() *commands.InvoiceCorrections {
	if r == nil {
		return nil
	}

	return &commands.InvoiceCorrections{
		Date:         r.Date,
		CustomerCode: r.CustomerCode,
		CustomerName: r.CustomerName,
		SalesmanName: r.SalesmanName,
		Priority:     r.Priority,
		TotalAmount:  r.TotalAmount,
		Remarks:      r.Remarks,
		Items:        toCommandItems(r.Items),
		ReplaceItems: r.ReplaceItems,
	}
}
