package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
	cache      ports.ReportCache
}

// NewChangeUserRoleCommandHandler accepts a nil cache.
func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory, cache ports.ReportCache) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{uowFactory: uowFactory, cache: cache}
}

func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var companies []kernel.UUID
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		var err error
		companies, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return err
	}

	invalidateReports(ctx, h.cache, companies...)
	return nil
}

// handle returns the companies the user belonged to before and after the change.
func (h ChangeUserRoleCommandHandler) handle(ctx context.Context, cmd ChangeUserRoleCommand) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	actor, err := users.Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}
	target, err := users.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	profile := cmd.Profile()
	allowed := policy.CanManageUser(actor, target) && policy.CanGrantProfile(actor, profile)
	if err = policy.Require(allowed, actor, policy.ActionEdit, "user "+target.ID().String()); err != nil {
		return nil, err
	}

	if err = checkSupervisor(ctx, users, profile); err != nil {
		return nil, err
	}

	var companies []kernel.UUID
	if id, ok := target.CompanyID(); ok {
		companies = append(companies, id)
	}

	if err = target.ChangeRole(profile); err != nil {
		return nil, err
	}

	if err = users.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if id, ok := target.CompanyID(); ok {
		companies = append(companies, id)
	}
	return companies, nil
}

// checkSupervisor verifies that an operator's manager or a driver's operator
// exists, has the right role and works for the same company.
func checkSupervisor(ctx context.Context, users ports.UserRepository, p org.Profile) error {
	var (
		supervisorID *kernel.UUID
		wantRole     org.Role
	)
	switch v := p.(type) {
	case org.OperatorProfile:
		supervisorID, wantRole = v.ManagerID, org.Manager
	case org.DriverProfile:
		supervisorID, wantRole = v.OperatorID, org.Operator
	default:
		return nil
	}
	if supervisorID == nil {
		return nil
	}

	supervisor, err := referencedUser(ctx, users, "supervisor id", *supervisorID)
	if err != nil {
		return err
	}
	if supervisor.Role() != wantRole {
		return errs.NewValueIsInvalidErrorWithCause("supervisor id",
			fmt.Errorf("user %s is a %s, want %s", supervisor.ID(), supervisor.Role(), wantRole))
	}
	if p.Company() == nil || !supervisor.BelongsTo(*p.Company()) {
		return errs.NewValueIsInvalidErrorWithCause("supervisor id",
			fmt.Errorf("user %s works for another company", supervisor.ID()))
	}
	return nil
}
