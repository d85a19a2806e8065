package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

type UpdateRouteCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.RouteLifecycle
	cache      ports.ReportCache
}

func NewUpdateRouteCommandHandler(uowFactory LifecycleUoWFactory, clock kernel.Clock, cache ports.ReportCache) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewRouteLifecycle(clock),
		cache:      cache,
	}
}

func (h UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var companyID kernel.UUID
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		var err error
		companyID, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return err
	}

	invalidateReports(ctx, h.cache, companyID)
	return nil
}

func (h UpdateRouteCommandHandler) handle(ctx context.Context, cmd UpdateRouteCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	actor, err := users.Get(ctx, cmd.ActorID())
	if err != nil {
		return kernel.UUID{}, err
	}

	routes := uow.RouteRepository()
	r, err := routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if cmd.Plan() != nil {
		if err = h.lifecycle.Replan(actor, r, *cmd.Plan()); err != nil {
			return kernel.UUID{}, err
		}
	}
	if cmd.DriverID() != nil {
		if err = policy.Require(policy.CanReassignRoute(actor, r), actor, policy.ActionEdit, kernel.EntityRoute+" "+r.ID().String()); err != nil {
			return kernel.UUID{}, err
		}
		driver, getErr := referencedUser(ctx, users, "driver id", *cmd.DriverID())
		if getErr != nil {
			return kernel.UUID{}, getErr
		}
		if err = h.lifecycle.AssignDriver(actor, r, driver); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = routes.Update(ctx, r); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return r.CompanyID(), nil
}
