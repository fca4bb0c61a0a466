package http

import (
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the fulfillment workflow over HTTP. It binds requests into
// commands and queries and translates domain errors into status codes.
type Server struct {
	importInvoiceHandler    commands.ImportInvoiceCommandHandler
	startPickingHandler     commands.StartPickingCommandHandler
	completePickingHandler  commands.CompletePickingCommandHandler
	startPackingHandler     commands.StartPackingCommandHandler
	completePackingHandler  commands.CompletePackingCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	returnToBillingHandler  commands.ReturnToBillingCommandHandler
	resolveInvoiceHandler   commands.ResolveInvoiceCommandHandler

	getInvoicesHandler     queries.GetInvoicesQueryHandler
	getInvoiceHandler      queries.GetInvoiceQueryHandler
	getOpenSessionsHandler queries.GetOpenSessionsQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	importInvoiceHandler commands.ImportInvoiceCommandHandler,
	startPickingHandler commands.StartPickingCommandHandler,
	completePickingHandler commands.CompletePickingCommandHandler,
	startPackingHandler commands.StartPackingCommandHandler,
	completePackingHandler commands.CompletePackingCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	returnToBillingHandler commands.ReturnToBillingCommandHandler,
	resolveInvoiceHandler commands.ResolveInvoiceCommandHandler,
	getInvoicesHandler queries.GetInvoicesQueryHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	getOpenSessionsHandler queries.GetOpenSessionsQueryHandler,
) *Server {
	return &Server{
		importInvoiceHandler:    importInvoiceHandler,
		startPickingHandler:     startPickingHandler,
		completePickingHandler:  completePickingHandler,
		startPackingHandler:     startPackingHandler,
		completePackingHandler:  completePackingHandler,
		startDeliveryHandler:    startDeliveryHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		returnToBillingHandler:  returnToBillingHandler,
		resolveInvoiceHandler:   resolveInvoiceHandler,
		getInvoicesHandler:      getInvoicesHandler,
		getInvoiceHandler:       getInvoiceHandler,
		getOpenSessionsHandler:  getOpenSessionsHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/invoices", s.ImportInvoice)
	api.GET("/invoices", s.GetInvoices)
	api.GET("/invoices/:no", s.GetInvoice)

	api.POST("/invoices/:no/picking/start", s.StartPicking)
	api.POST("/invoices/:no/picking/complete", s.CompletePicking)
	api.POST("/invoices/:no/packing/start", s.StartPacking)
	api.POST("/invoices/:no/packing/complete", s.CompletePacking)
	api.POST("/invoices/:no/delivery/start", s.StartDelivery)
	api.POST("/invoices/:no/delivery/complete", s.CompleteDelivery)
	api.POST("/invoices/:no/return", s.ReturnToBilling)
	api.POST("/invoices/:no/resolve", s.ResolveInvoice)

	api.GET("/sessions/open", s.GetOpenSessions)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ImportInvoice handles POST /api/v1/invoices - registers a billed invoice
// into the fulfillment workflow.
func (s *Server) ImportInvoice(ctx echo.Context) error {
	var request ImportInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewImportInvoiceCommand(
		request.InvoiceNo,
		request.Date,
		request.CustomerCode,
		request.CustomerName,
		request.SalesmanName,
		request.Priority,
		request.TotalAmount,
		request.Remarks,
		request.CreatedBy,
		toCommandItems(request.Items),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	invoiceID, err := s.importInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: invoiceID.String()})
}

// GetInvoices handles GET /api/v1/invoices - lists invoices with optional
// status and customer filters.
func (s *Server) GetInvoices(ctx echo.Context) error {
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return respondError(ctx, err)
	}

	offset, err := intQueryParam(ctx, "offset")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetInvoicesQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("customer_code"),
		limit,
		offset,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	invoices, err := s.getInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceSummaryResponses(invoices))
}

// GetInvoice handles GET /api/v1/invoices/:no - returns the full fulfillment
// view of one invoice.
func (s *Server) GetInvoice(ctx echo.Context) error {
	query, err := queries.NewGetInvoiceQuery(ctx.Param("no"))
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceDetailResponse(detail))
}

// StartPicking handles POST /api/v1/invoices/:no/picking/start.
func (s *Server) StartPicking(ctx echo.Context) error {
	var request StartStageRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewStartPickingCommand(ctx.Param("no"), request.UserEmail, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	sessionID, err := s.startPickingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: sessionID.String()})
}

// CompletePicking handles POST /api/v1/invoices/:no/picking/complete.
func (s *Server) CompletePicking(ctx echo.Context) error {
	var request CompletePickingRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCompletePickingCommand(ctx.Param("no"), request.UserEmail, request.Repick)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completePickingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPacking handles POST /api/v1/invoices/:no/packing/start.
func (s *Server) StartPacking(ctx echo.Context) error {
	var request StartStageRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewStartPackingCommand(ctx.Param("no"), request.UserEmail, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	sessionID, err := s.startPackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: sessionID.String()})
}

// CompletePacking handles POST /api/v1/invoices/:no/packing/complete - closes
// packing with the operator's box breakdown.
func (s *Server) CompletePacking(ctx echo.Context) error {
	var request CompletePackingRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	boxes, err := toBoxProposals(request.Boxes)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompletePackingCommand(
		ctx.Param("no"),
		request.UserEmail,
		boxes,
		request.HoldForConsolidation,
		request.Repack,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completePackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/invoices/:no/delivery/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	var request StartDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewStartDeliveryCommand(
		ctx.Param("no"),
		request.UserEmail,
		request.DeliveryType,
		request.CounterPickup,
		request.PickupPerson,
		request.PickupCompany,
		request.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	sessionID, err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: sessionID.String()})
}

// CompleteDelivery handles POST /api/v1/invoices/:no/delivery/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	var request CompleteDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCompleteDeliveryCommand(
		ctx.Param("no"),
		request.UserEmail,
		request.CourierName,
		request.TrackingNo,
		request.Lat,
		request.Lon,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnToBilling handles POST /api/v1/invoices/:no/return - parks an invoice
// in review and records the return.
func (s *Server) ReturnToBilling(ctx echo.Context) error {
	var request ReturnToBillingRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewReturnToBillingCommand(ctx.Param("no"), request.UserEmail, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	returnID, err := s.returnToBillingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: returnID.String()})
}

// ResolveInvoice handles POST /api/v1/invoices/:no/resolve - closes an open
// return and reopens the invoice at the stage it came back from.
func (s *Server) ResolveInvoice(ctx echo.Context) error {
	var request ResolveInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewResolveInvoiceCommand(
		ctx.Param("no"),
		request.UserEmail,
		request.Note,
		request.Corrections.toCommandCorrections(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resolveInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenSessions handles GET /api/v1/sessions/open - lists unfinished stage
// sessions, optionally only those started before a cutoff.
func (s *Server) GetOpenSessions(ctx echo.Context) error {
	var startedBefore *time.Time
	if raw := ctx.QueryParam("started_before"); raw != "" {
		cutoff, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("started_before", err))
		}

		startedBefore = &cutoff
	}

	query := queries.NewGetOpenSessionsQuery(startedBefore)

	sessions, err := s.getOpenSessionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOpenSessionResponses(sessions))
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return value, nil
}
