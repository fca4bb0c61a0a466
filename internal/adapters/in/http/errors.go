package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Discrepancies is populated only when packing completion is rejected
	// because box contents do not add up to the invoice lines.
	Discrepancies []DiscrepancyResponse `json:"discrepancies,omitempty"`
}

// DiscrepancyResponse is one invoice line whose boxed quantity does not match
// the required quantity.
type DiscrepancyResponse struct {
	ItemName string          `json:"item_name"`
	ItemCode string          `json:"item_code"`
	Required decimal.Decimal `json:"required"`
	Assigned decimal.Decimal `json:"assigned"`
	Delta    decimal.Decimal `json:"delta"`
}

// respondError translates domain errors into HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	var mismatchErr *errs.QuantityMismatchError
	if errors.As(err, &mismatchErr) {
		discrepancies := make([]DiscrepancyResponse, len(mismatchErr.Discrepancies))
		for i, d := range mismatchErr.Discrepancies {
			discrepancies[i] = DiscrepancyResponse{
				ItemName: d.ItemName,
				ItemCode: d.ItemCode,
				Required: d.Required,
				Assigned: d.Assigned,
				Delta:    d.Delta(),
			}
		}

		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:          http.StatusUnprocessableEntity,
			Message:       err.Error(),
			Discrepancies: discrepancies,
		})
	}

	code := statusCode(err)

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrIdentityMismatch):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrQuantityMismatch),
		errors.Is(err, errs.ErrMissingCourierInfo):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
