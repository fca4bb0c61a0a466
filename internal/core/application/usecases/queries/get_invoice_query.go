package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetInvoiceQueryIsNotConstructed = errors.New(
		"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
	)
)

// GetInvoiceQuery retrieves the full fulfillment view of a single invoice:
// the header, its line items, one summary per worked stage, packed boxes and
// any return-to-billing record.
//
// Example:
//
//	query, err := NewGetInvoiceQuery("INV-1001")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetInvoiceQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load invoice: %w", err)
//	}
type GetInvoiceQuery struct {
	guard guard.ConstructorGuard

	number string
}

// NewGetInvoiceQuery creates a detail query for the given invoice number.
func NewGetInvoiceQuery(number string) (GetInvoiceQuery, error) {
	if number == "" {
		return GetInvoiceQuery{}, errs.NewValueIsRequiredError("invoice number")
	}

	return GetInvoiceQuery{
		guard:  guard.NewConstructorGuard(),
		number: number,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

func (q GetInvoiceQuery) Number() string { return q.number }

// GetInvoiceQueryResponse is the full read model of one invoice.
type GetInvoiceQueryResponse struct {
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
	Remarks       string
	CreatedAt     time.Time
	CreatedBy     string

	Items  []InvoiceItemView
	Stages []StageSummaryView
	Boxes  []BoxView
	Return *InvoiceReturnView
}

// InvoiceItemView is one invoice line in the read model.
type InvoiceItemView struct {
	ID            kernel.UUID
	Name          string
	ItemCode      string
	Barcode       string
	Quantity      int
	UnitPrice     decimal.Decimal
	BatchNo       string
	ExpiryDate    *time.Time
	ShelfLocation string
	Company       string
	PackingSize   string
}

// StageSummaryView is the flattened state of one stage session. Stage-specific
// fields are zero for the stages they do not apply to.
type StageSummaryView struct {
	Stage         string
	SubStatus     string
	OperatorName  string
	OperatorEmail string
	StartedAt     time.Time
	EndedAt       *time.Time
	Notes         string

	// Packing only.
	HoldForConsolidation  bool
	ConsolidationCustomer string

	// Delivery only.
	DeliveryType string
	CourierName  string
	TrackingNo   string
	DeliveredBy  string
}

// BoxView is one packed box with its line assignments.
type BoxView struct {
	ID       kernel.UUID
	Number   int
	Sealed   bool
	SealedAt *time.Time
	Items    []BoxItemView
}

// BoxItemView is one line assignment inside a box.
type BoxItemView struct {
	InvoiceItemID kernel.UUID
	Quantity      decimal.Decimal
}

// InvoiceReturnView is the latest return-to-billing record of the invoice.
type InvoiceReturnView struct {
	ID             kernel.UUID
	Section        string
	Reason         string
	ReturnedBy     string
	ReturnedAt     time.Time
	Resolved       bool
	ResolvedBy     string
	ResolvedAt     *time.Time
	ResolutionNote string
}
