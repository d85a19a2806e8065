package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/ports"
)

type DeleteRouteCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.ReportCache
}

// NewDeleteRouteCommandHandler accepts a nil cache.
func NewDeleteRouteCommandHandler(uowFactory UoWFactory, cache ports.ReportCache) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{uowFactory: uowFactory, cache: cache}
}

func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	companyID, err := h.handle(ctx, cmd)
	if err != nil {
		return err
	}

	invalidateReports(ctx, h.cache, companyID)
	return nil
}

func (h DeleteRouteCommandHandler) handle(ctx context.Context, cmd DeleteRouteCommand) (kernel.UUID, error) {
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
	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = policy.Require(policy.CanDeleteRoute(actor, r), actor, policy.ActionDelete,
		kernel.EntityRoute+" "+r.ID().String()); err != nil {
		return kernel.UUID{}, err
	}

	if err = deleteRouteGraph(ctx, uow, r.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return r.CompanyID(), nil
}
