package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// InvoiceSummaryResponse is one row of the invoice listing.
type InvoiceSummaryResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Date          time.Time       `json:"date"`
	CustomerCode  string          `json:"customer_code"`
	CustomerName  string          `json:"customer_name"`
	SalesmanName  string          `json:"salesman_name"`
	Priority      string          `json:"priority"`
	Status        string          `json:"status"`
	BillingStatus string          `json:"billing_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemCount     int             `json:"item_count"`

	CurrentHandler *CurrentHandlerResponse `json:"current_handler,omitempty"`
}

// CurrentHandlerResponse is the operator holding the invoice at its current
// stage, or the return record while the invoice is in review.
type CurrentHandlerResponse struct {
	Stage         string    `json:"stage"`
	SubStatus     string    `json:"sub_status"`
	OperatorName  string    `json:"operator_name,omitempty"`
	OperatorEmail string    `json:"operator_email"`
	Since         time.Time `json:"since"`
	Note          string    `json:"note,omitempty"`
}

func toInvoiceSummaryResponses(rows []queries.GetInvoicesQueryResponse) []InvoiceSummaryResponse {
	result := make([]InvoiceSummaryResponse, len(rows))
	for i, row := range rows {
		summary := InvoiceSummaryResponse{
			ID:            row.ID.String(),
			Number:        row.Number,
			Date:          row.Date,
			CustomerCode:  row.CustomerCode,
			CustomerName:  row.CustomerName,
			SalesmanName:  row.SalesmanName,
			Priority:      row.Priority,
			Status:        row.Status,
			BillingStatus: row.BillingStatus,
			TotalAmount:   row.TotalAmount,
			ItemCount:     row.ItemCount,
		}

		if handler := row.CurrentHandler; handler != nil {
			summary.CurrentHandler = &CurrentHandlerResponse{
				Stage:         handler.Stage,
				SubStatus:     handler.SubStatus,
				OperatorName:  handler.OperatorName,
				OperatorEmail: handler.OperatorEmail,
				Since:         handler.Since,
				Note:          handler.Note,
			}
		}

		result[i] = summary
	}

	return result
}

// InvoiceDetailResponse is the full fulfillment view of one invoice.
type InvoiceDetailResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Date          time.Time       `json:"date"`
	CustomerCode  string          `json:"customer_code"`
	CustomerName  string          `json:"customer_name"`
	SalesmanName  string          `json:"salesman_name"`
	Priority      string          `json:"priority"`
	Status        string          `json:"status"`
	BillingStatus string          `json:"billing_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Remarks       string          `json:"remarks"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by"`

	Items  []InvoiceItemResponse  `json:"items"`
	Stages []StageSummaryResponse `json:"stages"`
	Boxes  []BoxResponse          `json:"boxes"`
	Return *InvoiceReturnResponse `json:"return,omitempty"`
}

// InvoiceItemResponse is one invoice line.
type InvoiceItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ItemCode      string          `json:"item_code"`
	Barcode       string          `json:"barcode"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	BatchNo       string          `json:"batch_no"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	ShelfLocation string          `json:"shelf_location"`
	Company       string          `json:"company"`
	PackingSize   string          `json:"packing_size"`
}

// StageSummaryResponse is the state of one worked stage session.
type StageSummaryResponse struct {
	Stage         string     `json:"stage"`
	SubStatus     string     `json:"sub_status"`
	OperatorName  string     `json:"operator_name"`
	OperatorEmail string     `json:"operator_email"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`

	HoldForConsolidation  bool   `json:"hold_for_consolidation,omitempty"`
	ConsolidationCustomer string `json:"consolidation_customer,omitempty"`

	DeliveryType string `json:"delivery_type,omitempty"`
	CourierName  string `json:"courier_name,omitempty"`
	TrackingNo   string `json:"tracking_no,omitempty"`
	DeliveredBy  string `json:"delivered_by,omitempty"`
}

// BoxResponse is one packed box with its line assignments.
type BoxResponse struct {
	ID       string            `json:"id"`
	Number   int               `json:"number"`
	Sealed   bool              `json:"sealed"`
	SealedAt *time.Time        `json:"sealed_at,omitempty"`
	Items    []BoxItemResponse `json:"items"`
}

// BoxItemResponse is one line assignment inside a box.
type BoxItemResponse struct {
	InvoiceItemID string          `json:"invoice_item_id"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// InvoiceReturnResponse is the latest return-to-billing record.
type InvoiceReturnResponse struct {
	ID             string     `json:"id"`
	Section        string     `json:"section"`
	Reason         string     `json:"reason"`
	ReturnedBy     string     `json:"returned_by"`
	ReturnedAt     time.Time  `json:"returned_at"`
	Resolved       bool       `json:"resolved"`
	ResolvedBy     string     `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	ResolutionNote string     `json:"resolution_note,omitempty"`
}

func toInvoiceDetailResponse(detail queries.GetInvoiceQueryResponse) InvoiceDetailResponse {
	response := InvoiceDetailResponse{
		ID:            detail.ID.String(),
		Number:        detail.Number,
		Date:          detail.Date,
		CustomerCode:  detail.CustomerCode,
		CustomerName:  detail.CustomerName,
		SalesmanName:  detail.SalesmanName,
		Priority:      detail.Priority,
		Status:        detail.Status,
		BillingStatus: detail.BillingStatus,
		TotalAmount:   detail.TotalAmount,
		Remarks:       detail.Remarks,
		CreatedAt:     detail.CreatedAt,
		CreatedBy:     detail.CreatedBy,
		Items:         make([]InvoiceItemResponse, len(detail.Items)),
		Stages:        make([]StageSummaryResponse, len(detail.Stages)),
		Boxes:         make([]BoxResponse, len(detail.Boxes)),
	}

	for i, item := range detail.Items {
		response.Items[i] = InvoiceItemResponse{
			ID:            item.ID.String(),
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

	for i, stage := range detail.Stages {
		response.Stages[i] = StageSummaryResponse{
			Stage:                 stage.Stage,
			SubStatus:             stage.SubStatus,
			OperatorName:          stage.OperatorName,
			OperatorEmail:         stage.OperatorEmail,
			StartedAt:             stage.StartedAt,
			EndedAt:               stage.EndedAt,
			Notes:                 stage.Notes,
			HoldForConsolidation:  stage.HoldForConsolidation,
			ConsolidationCustomer: stage.ConsolidationCustomer,
			DeliveryType:          stage.DeliveryType,
			CourierName:           stage.CourierName,
			TrackingNo:            stage.TrackingNo,
			DeliveredBy:           stage.DeliveredBy,
		}
	}

	for i, box := range detail.Boxes {
		items := make([]BoxItemResponse, len(box.Items))
		for j, item := range box.Items {
			items[j] = BoxItemResponse{
				InvoiceItemID: item.InvoiceItemID.String(),
				Quantity:      item.Quantity,
			}
		}

		response.Boxes[i] = BoxResponse{
			ID:       box.ID.String(),
			Number:   box.Number,
			Sealed:   box.Sealed,
			SealedAt: box.SealedAt,
			Items:    items,
		}
	}

	if detail.Return != nil {
		response.Return = &InvoiceReturnResponse{
			ID:             detail.Return.ID.String(),
			Section:        detail.Return.Section,
			Reason:         detail.Return.Reason,
			ReturnedBy:     detail.Return.ReturnedBy,
			ReturnedAt:     detail.Return.ReturnedAt,
			Resolved:       detail.Return.Resolved,
			ResolvedBy:     detail.Return.ResolvedBy,
			ResolvedAt:     detail.Return.ResolvedAt,
			ResolutionNote: detail.Return.ResolutionNote,
		}
	}

	return response
}

// OpenSessionResponse is one unfinished stage session.
type OpenSessionResponse struct {
	SessionID     string    `json:"session_id"`
	InvoiceID     string    `json:"invoice_id"`
	InvoiceNo     string    `json:"invoice_no"`
	CustomerName  string    `json:"customer_name"`
	Stage         string    `json:"stage"`
	SubStatus     string    `json:"sub_status"`
	OperatorName  string    `json:"operator_name"`
	OperatorEmail string    `json:"operator_email"`
	StartedAt     time.Time `json:"started_at"`
}

func toOpenSessionResponses(rows []queries.GetOpenSessionsQueryResponse) []OpenSessionResponse {
	result := make([]OpenSessionResponse, len(rows))
	for i, row := range rows {
		result[i] = OpenSessionResponse{
			SessionID:     row.SessionID.String(),
			InvoiceID:     row.InvoiceID.String(),
			InvoiceNo:     row.InvoiceNo,
			CustomerName:  row.CustomerName,
			Stage:         row.Stage,
			SubStatus:     row.SubStatus,
			OperatorName:  row.OperatorName,
			OperatorEmail: row.OperatorEmail,
			StartedAt:     row.StartedAt,
		}
	}

	return result
}
