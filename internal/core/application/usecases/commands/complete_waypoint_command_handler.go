package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CompleteWaypointCommandHandler records waypoint progress. Completing the
// last waypoint does not complete the route.
type CompleteWaypointCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.RouteLifecycle
	cache      ports.ReportCache
}

func NewCompleteWaypointCommandHandler(uowFactory LifecycleUoWFactory, clock kernel.Clock, cache ports.ReportCache) CompleteWaypointCommandHandler {
	return CompleteWaypointCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewRouteLifecycle(clock),
		cache:      cache,
	}
}

func (h CompleteWaypointCommandHandler) Handle(ctx context.Context, cmd CompleteWaypointCommand) error {
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

func (h CompleteWaypointCommandHandler) handle(ctx context.Context, cmd CompleteWaypointCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return kernel.UUID{}, err
	}

	routes := uow.RouteRepository()
	r, err := routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.lifecycle.CompleteWaypoint(actor, r, cmd.Order()); err != nil {
		return kernel.UUID{}, err
	}

	if err = routes.Update(ctx, r); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return r.CompanyID(), nil
}
