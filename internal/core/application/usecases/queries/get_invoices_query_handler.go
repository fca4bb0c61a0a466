package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInvoicesQueryHandler serves the invoice work-queue listing from the
// database, bypassing the aggregate repositories.
//
// Example:
//
//	handler := NewGetInvoicesQueryHandler(db)
//	query, _ := NewGetInvoicesQuery("Invoiced", "", 50, 0)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to list invoices: %v", err)
//	    return err
//	}
type GetInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoicesQueryHandler creates a handler for invoice listing queries.
func NewGetInvoicesQueryHandler(db *gorm.DB) GetInvoicesQueryHandler {
	return GetInvoicesQueryHandler{db: db}
}

// Handle executes the listing query. Rows are ordered by priority (high
// first) and then invoice date, so the queue surfaces urgent work on top.
func (h GetInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetInvoicesQuery,
) ([]GetInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// Each session table is unique per invoice_id and at most one return is
	// unresolved, so the joins never multiply rows.
	sql := `
		SELECT
			i.id,
			i.invoice_no,
			i.invoice_date,
			i.customer_code,
			i.customer_name,
			i.salesman_name,
			i.priority,
			i.status,
			i.billing_status,
			i.total_amount,
			(SELECT COUNT(*) FROM invoice_items it WHERE it.invoice_id = i.id) AS item_count,
			pk.operator_name, pk.operator_email, pk.sub_status, pk.started_at,
			pa.operator_name, pa.operator_email, pa.sub_status, pa.started_at,
			d.operator_name, d.operator_email, d.sub_status, d.started_at,
			r.section, r.reason, r.returned_by, r.returned_at
		FROM invoices i
		LEFT JOIN picking_sessions pk ON pk.invoice_id = i.id
		LEFT JOIN packing_sessions pa ON pa.invoice_id = i.id
		LEFT JOIN delivery_sessions d ON d.invoice_id = i.id
		LEFT JOIN invoice_returns r ON r.invoice_id = i.id AND NOT r.resolved
		WHERE (? = 0 OR i.status = ?)
		  AND (? = '' OR i.customer_code = ?)
		ORDER BY i.priority DESC, i.invoice_date, i.invoice_no
		LIMIT ? OFFSET ?
	`

	rows, err := h.db.WithContext(ctx).Raw(sql,
		int(query.Status()), int(query.Status()),
		query.CustomerCode(), query.CustomerCode(),
		query.Limit(), query.Offset(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]GetInvoicesQueryResponse, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			number        string
			date          time.Time
			customerCode  string
			customerName  string
			salesmanName  string
			priority      int
			status        int
			billingStatus int
			totalAmount   decimal.Decimal
			itemCount     int

			picking, packing, delivery stageColumns
			ret                        returnColumns
		)

		err = rows.Scan(
			&id,
			&number,
			&date,
			&customerCode,
			&customerName,
			&salesmanName,
			&priority,
			&status,
			&billingStatus,
			&totalAmount,
			&itemCount,
			&picking.operatorName, &picking.operatorEmail, &picking.subStatus, &picking.startedAt,
			&packing.operatorName, &packing.operatorEmail, &packing.subStatus, &packing.startedAt,
			&delivery.operatorName, &delivery.operatorEmail, &delivery.subStatus, &delivery.startedAt,
			&ret.section, &ret.reason, &ret.returnedBy, &ret.returnedAt,
		)
		if err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		invoices = append(invoices, GetInvoicesQueryResponse{
			ID:             invoiceID,
			Number:         number,
			Date:           date,
			CustomerCode:   customerCode,
			CustomerName:   customerName,
			SalesmanName:   salesmanName,
			Priority:       invoice.Priority(priority).String(),
			Status:         invoice.Status(status).String(),
			BillingStatus:  invoice.BillingStatus(billingStatus).String(),
			TotalAmount:    totalAmount,
			ItemCount:      itemCount,
			CurrentHandler: currentHandler(invoice.Status(status), picking, packing, delivery, ret),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

// stageColumns holds the nullable session columns of one LEFT JOIN leg.
type stageColumns struct {
	operatorName  sql.NullString
	operatorEmail sql.NullString
	subStatus     sql.NullInt64
	startedAt     sql.NullTime
}

// returnColumns holds the nullable open-return columns.
type returnColumns struct {
	section    sql.NullInt64
	reason     sql.NullString
	returnedBy sql.NullString
	returnedAt sql.NullTime
}

// currentHandler derives the single stage summary from the invoice status:
// the picker through Picking/Picked, the packer through Packing/Packed, the
// delivery assignee through Dispatched/Delivered, and the return record
// while the invoice is in review.
func currentHandler(
	status invoice.Status,
	picking, packing, delivery stageColumns,
	ret returnColumns,
) *CurrentHandlerView {
	switch status {
	case invoice.StatusPicking, invoice.StatusPicked:
		return stageHandlerView(session.StagePicking, picking)
	case invoice.StatusPacking, invoice.StatusPacked:
		return stageHandlerView(session.StagePacking, packing)
	case invoice.StatusDispatched, invoice.StatusDelivered:
		return stageHandlerView(session.StageDelivery, delivery)
	case invoice.StatusReview:
		if !ret.returnedBy.Valid {
			return nil
		}
		return &CurrentHandlerView{
			Stage:         session.Stage(ret.section.Int64).String(),
			SubStatus:     session.SubStatusReview.String(),
			OperatorEmail: ret.returnedBy.String,
			Since:         ret.returnedAt.Time,
			Note:          ret.reason.String,
		}
	default:
		return nil
	}
}

func stageHandlerView(stage session.Stage, cols stageColumns) *CurrentHandlerView {
	if !cols.operatorEmail.Valid {
		return nil
	}

	return &CurrentHandlerView{
		Stage:         stage.String(),
		SubStatus:     session.SubStatus(cols.subStatus.Int64).String(),
		OperatorName:  cols.operatorName.String,
		OperatorEmail: cols.operatorEmail.String,
		Since:         cols.startedAt.Time,
	}
}
