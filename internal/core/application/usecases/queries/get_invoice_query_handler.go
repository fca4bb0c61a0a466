package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler assembles the full read model of one invoice from
// the header, item, session, box and return tables.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for invoice detail queries.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the detail query. Returns ObjectNotFoundError when no
// invoice carries the requested number.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (GetInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	resp, err := h.loadHeader(ctx, query.Number())
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	if resp.Items, err = h.loadItems(ctx, resp.ID); err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	if resp.Stages, err = h.loadStages(ctx, resp.ID); err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	if resp.Boxes, err = h.loadBoxes(ctx, resp.ID); err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	if resp.Return, err = h.loadReturn(ctx, resp.ID); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	return resp, nil
}

func (h GetInvoiceQueryHandler) loadHeader(ctx context.Context, number string) (GetInvoiceQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			invoice_no,
			invoice_date,
			customer_code,
			customer_name,
			salesman_name,
			priority,
			status,
			billing_status,
			total_amount,
			remarks,
			created_at,
			created_by
		FROM invoices
		WHERE invoice_no = ?
	`, number).Rows()
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetInvoiceQueryResponse{}, err
		}
		return GetInvoiceQueryResponse{}, errs.NewObjectNotFoundError("invoice", number)
	}

	var (
		resp          GetInvoiceQueryResponse
		id            uuid.UUID
		priority      int
		status        int
		billingStatus int
	)

	err = rows.Scan(
		&id,
		&resp.Number,
		&resp.Date,
		&resp.CustomerCode,
		&resp.CustomerName,
		&resp.SalesmanName,
		&priority,
		&status,
		&billingStatus,
		&resp.TotalAmount,
		&resp.Remarks,
		&resp.CreatedAt,
		&resp.CreatedBy,
	)
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	resp.Priority = invoice.Priority(priority).String()
	resp.Status = invoice.Status(status).String()
	resp.BillingStatus = invoice.BillingStatus(billingStatus).String()

	return resp, rows.Err()
}

func (h GetInvoiceQueryHandler) loadItems(ctx context.Context, invoiceID kernel.UUID) ([]InvoiceItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			item_code,
			barcode,
			quantity,
			unit_price,
			batch_no,
			expiry_date,
			shelf_location,
			company,
			packing_size
		FROM invoice_items
		WHERE invoice_id = ?
		ORDER BY item_code
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]InvoiceItemView, 0)

	for rows.Next() {
		var (
			item InvoiceItemView
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&item.Name,
			&item.ItemCode,
			&item.Barcode,
			&item.Quantity,
			&item.UnitPrice,
			&item.BatchNo,
			&item.ExpiryDate,
			&item.ShelfLocation,
			&item.Company,
			&item.PackingSize,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// loadStages collects one summary per session table, in stage order.
func (h GetInvoiceQueryHandler) loadStages(ctx context.Context, invoiceID kernel.UUID) ([]StageSummaryView, error) {
	stages := make([]StageSummaryView, 0, 3)

	picking, err := h.loadPickingStage(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if picking != nil {
		stages = append(stages, *picking)
	}

	packing, err := h.loadPackingStage(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if packing != nil {
		stages = append(stages, *packing)
	}

	delivery, err := h.loadDeliveryStage(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if delivery != nil {
		stages = append(stages, *delivery)
	}

	return stages, nil
}

func (h GetInvoiceQueryHandler) loadPickingStage(ctx context.Context, invoiceID kernel.UUID) (*StageSummaryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT operator_name, operator_email, sub_status, started_at, ended_at, notes
		FROM picking_sessions
		WHERE invoice_id = ?
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		view      StageSummaryView
		subStatus int
	)

	err = rows.Scan(
		&view.OperatorName,
		&view.OperatorEmail,
		&subStatus,
		&view.StartedAt,
		&view.EndedAt,
		&view.Notes,
	)
	if err != nil {
		return nil, err
	}

	view.Stage = session.StagePicking.String()
	view.SubStatus = session.SubStatus(subStatus).String()

	return &view, rows.Err()
}

func (h GetInvoiceQueryHandler) loadPackingStage(ctx context.Context, invoiceID kernel.UUID) (*StageSummaryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT operator_name, operator_email, sub_status, started_at, ended_at, notes,
			hold_for_consolidation, consolidation_customer
		FROM packing_sessions
		WHERE invoice_id = ?
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		view      StageSummaryView
		subStatus int
	)

	err = rows.Scan(
		&view.OperatorName,
		&view.OperatorEmail,
		&subStatus,
		&view.StartedAt,
		&view.EndedAt,
		&view.Notes,
		&view.HoldForConsolidation,
		&view.ConsolidationCustomer,
	)
	if err != nil {
		return nil, err
	}

	view.Stage = session.StagePacking.String()
	view.SubStatus = session.SubStatus(subStatus).String()

	return &view, rows.Err()
}

func (h GetInvoiceQueryHandler) loadDeliveryStage(ctx context.Context, invoiceID kernel.UUID) (*StageSummaryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT operator_name, operator_email, sub_status, started_at, ended_at, notes,
			delivery_type, courier_name, tracking_no, delivered_by
		FROM delivery_sessions
		WHERE invoice_id = ?
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		view         StageSummaryView
		subStatus    int
		deliveryType int
	)

	err = rows.Scan(
		&view.OperatorName,
		&view.OperatorEmail,
		&subStatus,
		&view.StartedAt,
		&view.EndedAt,
		&view.Notes,
		&deliveryType,
		&view.CourierName,
		&view.TrackingNo,
		&view.DeliveredBy,
	)
	if err != nil {
		return nil, err
	}

	view.Stage = session.StageDelivery.String()
	view.SubStatus = session.SubStatus(subStatus).String()
	view.DeliveryType = session.DeliveryType(deliveryType).String()

	return &view, rows.Err()
}

func (h GetInvoiceQueryHandler) loadBoxes(ctx context.Context, invoiceID kernel.UUID) ([]BoxView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.number,
			b.sealed,
			b.sealed_at,
			bi.invoice_item_id,
			bi.quantity
		FROM boxes b
		JOIN box_items bi ON bi.box_id = b.id
		WHERE b.invoice_id = ?
		ORDER BY b.number, bi.invoice_item_id
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boxes := make([]BoxView, 0)

	for rows.Next() {
		var (
			boxID    uuid.UUID
			number   int
			sealed   bool
			sealedAt *time.Time
			itemID   uuid.UUID
			quantity decimal.Decimal
		)

		err = rows.Scan(&boxID, &number, &sealed, &sealedAt, &itemID, &quantity)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(boxID[:])
		if idErr != nil {
			return nil, idErr
		}
		invoiceItemID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(boxes) == 0 || boxes[len(boxes)-1].ID != id {
			boxes = append(boxes, BoxView{
				ID:       id,
				Number:   number,
				Sealed:   sealed,
				SealedAt: sealedAt,
			})
		}

		last := &boxes[len(boxes)-1]
		last.Items = append(last.Items, BoxItemView{
			InvoiceItemID: invoiceItemID,
			Quantity:      quantity,
		})
	}

	return boxes, rows.Err()
}

// loadReturn picks the most recent return record; earlier resolved returns
// stay in the table as history.
func (h GetInvoiceQueryHandler) loadReturn(ctx context.Context, invoiceID kernel.UUID) (*InvoiceReturnView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, section, reason, returned_by, returned_at,
			resolved, resolved_by, resolved_at, resolution_note
		FROM invoice_returns
		WHERE invoice_id = ?
		ORDER BY returned_at DESC
		LIMIT 1
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		view    InvoiceReturnView
		id      uuid.UUID
		section int
	)

	err = rows.Scan(
		&id,
		&section,
		&view.Reason,
		&view.ReturnedBy,
		&view.ReturnedAt,
		&view.Resolved,
		&view.ResolvedBy,
		&view.ResolvedAt,
		&view.ResolutionNote,
	)
	if err != nil {
		return nil, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	view.Section = session.Stage(section).String()

	return &view, rows.Err()
}
