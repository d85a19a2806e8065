package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ChangeRouteStatusCommandHandler applies a route transition and its task
// cascade atomically, then notifies about each committed transition.
type ChangeRouteStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.RouteLifecycle
	notifier   ports.Notifier
	cache      ports.ReportCache
}

func NewChangeRouteStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	clock kernel.Clock,
	notifier ports.Notifier,
	cache ports.ReportCache,
) ChangeRouteStatusCommandHandler {
	return ChangeRouteStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewRouteLifecycle(clock),
		notifier:   orNop(notifier),
		cache:      cache,
	}
}

func (h ChangeRouteStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRouteStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var transitions []kernel.Transition
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		var err error
		transitions, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return err
	}

	invalidateReports(ctx, h.cache, companiesOf(transitions)...)
	publish(ctx, h.notifier, transitions)
	return nil
}

func (h ChangeRouteStatusCommandHandler) handle(ctx context.Context, cmd ChangeRouteStatusCommand) ([]kernel.Transition, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	tasks := uow.TaskRepository()
	routes := uow.RouteRepository()

	r, err := routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}
	linked, err := linkedTask(ctx, tasks, r)
	if err != nil {
		return nil, err
	}

	transitions, err := h.apply(actor, r, linked, cmd.Action())
	if err != nil {
		return nil, err
	}

	if err = routes.Update(ctx, r); err != nil {
		return nil, err
	}
	if linked != nil && touches(transitions, kernel.EntityTask) {
		if err = tasks.Update(ctx, linked); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return transitions, nil
}

func (h ChangeRouteStatusCommandHandler) apply(
	actor *org.User,
	r *route.Route,
	linked *task.Task,
	action RouteAction,
) ([]kernel.Transition, error) {
	switch action {
	case RouteActionStart:
		return h.lifecycle.Start(actor, r, linked)
	case RouteActionComplete:
		return h.lifecycle.Complete(actor, r, linked)
	case RouteActionCancel:
		return h.lifecycle.Cancel(actor, r, linked)
	default:
		return nil, errs.NewValueIsInvalidError("route action")
	}
}
