package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOpenSessionsQueryIsNotConstructed = errors.New(
		"GetOpenSessionsQuery must be created via NewGetOpenSessionsQuery constructor",
	)
)

// GetOpenSessionsQuery retrieves every stage session still in progress,
// across picking, packing and delivery. An optional cutoff restricts the
// result to sessions started before that instant, which is how the stale
// session report finds work that has been sitting too long.
//
// Example:
//
//	cutoff := time.Now().Add(-4 * time.Hour)
//	query := NewGetOpenSessionsQuery(&cutoff)
//	handler := NewGetOpenSessionsQueryHandler(db)
//
//	stale, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list open sessions: %w", err)
//	}
type GetOpenSessionsQuery struct {
	guard guard.ConstructorGuard

	startedBefore *time.Time
}

// NewGetOpenSessionsQuery creates an open-session query. A nil cutoff matches
// every open session.
func NewGetOpenSessionsQuery(startedBefore *time.Time) GetOpenSessionsQuery {
	return GetOpenSessionsQuery{
		guard:         guard.NewConstructorGuard(),
		startedBefore: startedBefore,
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenSessionsQueryIsNotConstructed)
}

func (q GetOpenSessionsQuery) StartedBefore() *time.Time { return q.startedBefore }

// GetOpenSessionsQueryResponse is one in-progress session across any stage.
type GetOpenSessionsQueryResponse struct {
	SessionID     kernel.UUID
	InvoiceID     kernel.UUID
	InvoiceNo     string
	CustomerName  string
	Stage         string
	SubStatus     string
	OperatorName  string
	OperatorEmail string
	StartedAt     time.Time
}
