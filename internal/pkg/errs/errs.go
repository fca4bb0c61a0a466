package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for classification via errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrConflict           = errors.New("conflict")
	ErrInvalidState       = errors.New("invalid state")
	ErrIdentityMismatch   = errors.New("identity mismatch")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyCompleted   = errors.New("already completed")
	ErrQuantityMismatch   = errors.New("quantity mismatch")
	ErrMissingCourierInfo = errors.New("missing courier info")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "), "\r", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause))
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
	}
	return withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates an aggregate version conflict.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ConflictError indicates that an object the operation would create already
// exists: a duplicate invoice number, a second session for the same stage,
// or a second unresolved return for the same invoice.
type ConflictError struct {
	ParamName string
	Details   string
	Cause     error
}

func NewConflictError(paramName, details string) *ConflictError {
	return &ConflictError{ParamName: paramName, Details: details}
}

func NewConflictErrorWithCause(paramName, details string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Details: details, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Details), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStateError indicates an operation attempted from a lifecycle status
// that does not permit it.
type InvalidStateError struct {
	Status    string
	Operation string
	Cause     error
}

func NewInvalidStateError(status, operation string) *InvalidStateError {
	return &InvalidStateError{Status: status, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is not a valid status to %s", ErrInvalidState, e.Status, e.Operation),
		e.Cause,
	)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// IdentityMismatchError indicates that the scanned operator is not the
// operator assigned to the session.
type IdentityMismatchError struct {
	Assigned string
	Scanned  string
}

func NewIdentityMismatchError(assigned, scanned string) *IdentityMismatchError {
	return &IdentityMismatchError{Assigned: assigned, Scanned: scanned}
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("%s: session is assigned to %s, scanned %s", ErrIdentityMismatch, e.Assigned, e.Scanned)
}

func (e *IdentityMismatchError) Unwrap() error {
	return ErrIdentityMismatch
}

// ForbiddenError indicates that an operator lacks the menu-access capability
// required for a stage.
type ForbiddenError struct {
	Email    string
	MenuCode string
}

func NewForbiddenError(email, menuCode string) *ForbiddenError {
	return &ForbiddenError{Email: email, MenuCode: menuCode}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s has no access to %s", ErrForbidden, e.Email, e.MenuCode)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// AlreadyCompletedError indicates an idempotent re-completion attempt without
// the re-pick flag.
type AlreadyCompletedError struct {
	Stage     string
	InvoiceNo string
}

func NewAlreadyCompletedError(stage, invoiceNo string) *AlreadyCompletedError {
	return &AlreadyCompletedError{Stage: stage, InvoiceNo: invoiceNo}
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("%s: %s for invoice %s", ErrAlreadyCompleted, e.Stage, e.InvoiceNo)
}

func (e *AlreadyCompletedError) Unwrap() error {
	return ErrAlreadyCompleted
}

// QuantityDiscrepancy describes one invoice item whose assigned box quantity
// does not equal the required quantity.
type QuantityDiscrepancy struct {
	ItemName string
	ItemCode string
	Required decimal.Decimal
	Assigned decimal.Decimal
}

// Delta returns the absolute difference between required and assigned.
func (d QuantityDiscrepancy) Delta() decimal.Decimal {
	return d.Required.Sub(d.Assigned).Abs()
}

func (d QuantityDiscrepancy) String() string {
	if d.Assigned.GreaterThan(d.Required) {
		return fmt.Sprintf("%s: %s assigned, %s required, excess %s",
			d.ItemName, d.Assigned, d.Required, d.Delta())
	}
	return fmt.Sprintf("%s: %s assigned, %s required, missing %s",
		d.ItemName, d.Assigned, d.Required, d.Delta())
}

// QuantityMismatchError carries every box-reconciliation violation found in
// one pass, so operators see all discrepancies in a single round trip.
type QuantityMismatchError struct {
	Discrepancies []QuantityDiscrepancy
}

func NewQuantityMismatchError(discrepancies []QuantityDiscrepancy) *QuantityMismatchError {
	return &QuantityMismatchError{Discrepancies: discrepancies}
}

func (e *QuantityMismatchError) Error() string {
	parts := make([]string, len(e.Discrepancies))
	for i, d := range e.Discrepancies {
		parts[i] = d.String()
	}
	return fmt.Sprintf("%s: %s", ErrQuantityMismatch, strings.Join(parts, "; "))
}

func (e *QuantityMismatchError) Unwrap() error {
	return ErrQuantityMismatch
}

// MissingCourierInfoError indicates a courier delivery completed without the
// mandatory courier details.
type MissingCourierInfoError struct {
	ParamName string
}

func NewMissingCourierInfoError(paramName string) *MissingCourierInfoError {
	return &MissingCourierInfoError{ParamName: paramName}
}

func (e *MissingCourierInfoError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingCourierInfo, e.ParamName)
}

func (e *MissingCourierInfoError) Unwrap() error {
	return ErrMissingCourierInfo
}
