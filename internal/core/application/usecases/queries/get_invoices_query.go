package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetInvoicesQueryIsNotConstructed = errors.New(
		"GetInvoicesQuery must be created via NewGetInvoicesQuery constructor",
	)
)

const (
	defaultInvoicesPageSize = 50
	maxInvoicesPageSize     = 500
)

// GetInvoicesQuery retrieves a page of invoices for the work queue listings.
// Status and customer filters are optional; an empty filter matches all rows.
//
// Example:
//
//	query, err := NewGetInvoicesQuery("Picking", "", 20, 0)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetInvoicesQueryHandler(db)
//
//	invoices, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list invoices: %w", err)
//	}
type GetInvoicesQuery struct {
	guard guard.ConstructorGuard

	status       invoice.Status
	customerCode string
	limit        int
	offset       int
}

// NewGetInvoicesQuery creates a listing query. An empty status string means
// no status filter; otherwise it must name a valid invoice status. A
// non-positive limit falls back to the default page size.
func NewGetInvoicesQuery(status string, customerCode string, limit, offset int) (GetInvoicesQuery, error) {
	q := GetInvoicesQuery{guard: guard.NewConstructorGuard()}

	if status != "" {
		parsed, err := invoice.StatusFromString(status)
		if err != nil {
			return GetInvoicesQuery{}, err
		}
		q.status = parsed
	}

	if limit <= 0 {
		limit = defaultInvoicesPageSize
	}
	if limit > maxInvoicesPageSize {
		return GetInvoicesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxInvoicesPageSize)
	}
	if offset < 0 {
		return GetInvoicesQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	q.customerCode = customerCode
	q.limit = limit
	q.offset = offset
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesQueryIsNotConstructed)
}

func (q GetInvoicesQuery) Status() invoice.Status { return q.status }
func (q GetInvoicesQuery) CustomerCode() string   { return q.customerCode }
func (q GetInvoicesQuery) Limit() int             { return q.limit }
func (q GetInvoicesQuery) Offset() int            { return q.offset }

// GetInvoicesQueryResponse is one row of the invoice listing.
type GetInvoicesQueryResponse struct {
	ID            kernel.UUID
	Number        string
	Date          time.Time
	CustomerCode  string
	CustomerName  string
	SalesmanName  string
	Priority      string
	Status        string
	BillingStatus string
	TotalAmount   decimal.Decimal
	ItemCount     int

	// CurrentHandler is who holds the invoice at its current stage. Nil
	// while the invoice sits in the import queue with nobody assigned.
	CurrentHandler *CurrentHandlerView
}

// CurrentHandlerView is the single stage summary of the listing: the session
// operator matching the invoice status, or the return record while the
// invoice is parked in review.
type CurrentHandlerView struct {
	Stage         string
	SubStatus     string
	OperatorName  string
	OperatorEmail string
	Since         time.Time

	// Note carries the return reason while the invoice is in review.
	Note string
}
