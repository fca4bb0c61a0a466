package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// resolveUser looks up an active user in the directory by email.
// Unknown and deactivated users are indistinguishable to callers.
func resolveUser(ctx context.Context, directory ports.UserDirectory, email string) (session.Operator, error) {
	user, err := directory.ResolveUser(ctx, email)
	if err != nil {
		return session.Operator{}, err
	}
	if user == nil || !user.Active {
		return session.Operator{}, errs.NewObjectNotFoundError("user", email)
	}

	return session.NewOperator(user.ID, user.Name, user.Email)
}

// resolveOperator resolves an active user and verifies the stage's menu
// capability in one step. Every stage operation goes through here before any
// state is touched.
func resolveOperator(
	ctx context.Context,
	directory ports.UserDirectory,
	email string,
	stage session.Stage,
) (session.Operator, error) {
	operator, err := resolveUser(ctx, directory, email)
	if err != nil {
		return session.Operator{}, err
	}

	ok, err := directory.HasMenuAccess(ctx, operator.ID(), stage.MenuCode())
	if err != nil {
		return session.Operator{}, err
	}
	if !ok {
		return session.Operator{}, errs.NewForbiddenError(email, stage.MenuCode())
	}

	return operator, nil
}
