package session

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Operator identifies the user assigned to a session. Sessions denormalize
// the name and email captured at scan time; user management itself is an
// external collaborator.
type Operator struct {
	id    kernel.UUID
	name  string
	email string
}

// NewOperator creates an operator reference from a resolved user.
func NewOperator(id kernel.UUID, name, email string) (Operator, error) {
	if err := id.Validate(); err != nil {
		return Operator{}, err
	}
	if name == "" {
		return Operator{}, errs.NewValueIsRequiredError("operator name")
	}
	if email == "" {
		return Operator{}, errs.NewValueIsRequiredError("operator email")
	}
	return Operator{id: id, name: name, email: email}, nil
}

func (o Operator) ID() kernel.UUID { return o.id }
func (o Operator) Name() string    { return o.name }
func (o Operator) Email() string   { return o.email }

// IsZero reports whether the operator reference is unset.
func (o Operator) IsZero() bool {
	return o.id.Validate() != nil
}
