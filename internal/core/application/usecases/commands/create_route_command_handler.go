package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateRouteCommandHandler stores a Planned route. The linked task keeps its status.
type CreateRouteCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.RouteLifecycle
	cache      ports.ReportCache
}

func NewCreateRouteCommandHandler(uowFactory LifecycleUoWFactory, clock kernel.Clock, cache ports.ReportCache) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewRouteLifecycle(clock),
		cache:      cache,
	}
}

func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	id, err := h.handle(ctx, cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	invalidateReports(ctx, h.cache, cmd.CompanyID())
	return id, nil
}

func (h CreateRouteCommandHandler) handle(ctx context.Context, cmd CreateRouteCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	routes := uow.RouteRepository()

	actor, err := users.Get(ctx, cmd.ActorID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = policy.Require(policy.CanCreate(actor, cmd.CompanyID()), actor, policy.ActionCreate,
		"company "+cmd.CompanyID().String()); err != nil {
		return kernel.UUID{}, err
	}

	var driver *org.User
	if cmd.DriverID() != nil {
		if driver, err = referencedUser(ctx, users, "driver id", *cmd.DriverID()); err != nil {
			return kernel.UUID{}, err
		}
	}

	var linked *task.Task
	if cmd.TaskID() != nil {
		if linked, err = uow.TaskRepository().Get(ctx, *cmd.TaskID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("task id", err)
			}
			return kernel.UUID{}, err
		}
		existing, getErr := linkedRoute(ctx, routes, linked.ID())
		if getErr != nil {
			return kernel.UUID{}, getErr
		}
		if existing != nil {
			return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("task id",
				errors.New("task already has a route"))
		}
	}

	r, err := h.lifecycle.Create(actor, cmd.CompanyID(), cmd.Plan(), linked, driver)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = routes.Add(ctx, r); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return r.ID(), nil
}
