package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenSessionsQueryHandler retrieves in-progress sessions from all three
// stage tables in one pass. Sessions parked in review are not open work and
// are excluded.
type GetOpenSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenSessionsQueryHandler creates a handler for open-session queries.
func NewGetOpenSessionsQueryHandler(db *gorm.DB) GetOpenSessionsQueryHandler {
	return GetOpenSessionsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered oldest first, so the
// longest-running session leads the report.
func (h GetOpenSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenSessionsQuery,
) ([]GetOpenSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	noCutoff := query.StartedBefore() == nil
	cutoff := time.Time{}
	if !noCutoff {
		cutoff = *query.StartedBefore()
	}

	sql := `
		SELECT s.id, s.invoice_id, i.invoice_no, i.customer_name, ? AS stage,
			s.sub_status, s.operator_name, s.operator_email, s.started_at
		FROM picking_sessions s
		JOIN invoices i ON i.id = s.invoice_id
		WHERE s.sub_status = ? AND (? OR s.started_at < ?)
		UNION ALL
		SELECT s.id, s.invoice_id, i.invoice_no, i.customer_name, ? AS stage,
			s.sub_status, s.operator_name, s.operator_email, s.started_at
		FROM packing_sessions s
		JOIN invoices i ON i.id = s.invoice_id
		WHERE s.sub_status = ? AND (? OR s.started_at < ?)
		UNION ALL
		SELECT s.id, s.invoice_id, i.invoice_no, i.customer_name, ? AS stage,
			s.sub_status, s.operator_name, s.operator_email, s.started_at
		FROM delivery_sessions s
		JOIN invoices i ON i.id = s.invoice_id
		WHERE s.sub_status = ? AND (? OR s.started_at < ?)
		ORDER BY started_at
	`

	rows, err := h.db.WithContext(ctx).Raw(sql,
		session.StagePicking.String(), int(session.SubStatusPreparing), noCutoff, cutoff,
		session.StagePacking.String(), int(session.SubStatusInProgress), noCutoff, cutoff,
		session.StageDelivery.String(), int(session.SubStatusInTransit), noCutoff, cutoff,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]GetOpenSessionsQueryResponse, 0)

	for rows.Next() {
		var (
			resp      GetOpenSessionsQueryResponse
			sessionID uuid.UUID
			invoiceID uuid.UUID
			subStatus int
		)

		err = rows.Scan(
			&sessionID,
			&invoiceID,
			&resp.InvoiceNo,
			&resp.CustomerName,
			&resp.Stage,
			&subStatus,
			&resp.OperatorName,
			&resp.OperatorEmail,
			&resp.StartedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.SessionID, err = kernel.UUIDFromBytes(sessionID[:]); err != nil {
			return nil, err
		}
		if resp.InvoiceID, err = kernel.UUIDFromBytes(invoiceID[:]); err != nil {
			return nil, err
		}
		resp.SubStatus = session.SubStatus(subStatus).String()

		sessions = append(sessions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
