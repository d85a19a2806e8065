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

// ChangeTaskStatusCommandHandler applies a task transition and its cascade in
// one unit of work, then notifies about every committed transition.
//
// Example:
//
//	cmd, _ := NewChangeTaskStatusCommand(driverID, taskID, TaskActionStart)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrInvalidTransition) {
//	    // task already finished
//	}
type ChangeTaskStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.TaskLifecycle
	notifier   ports.Notifier
	cache      ports.ReportCache
}

func NewChangeTaskStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	clock kernel.Clock,
	notifier ports.Notifier,
	cache ports.ReportCache,
) ChangeTaskStatusCommandHandler {
	return ChangeTaskStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewTaskLifecycle(clock),
		notifier:   orNop(notifier),
		cache:      cache,
	}
}

func (h ChangeTaskStatusCommandHandler) Handle(ctx context.Context, cmd ChangeTaskStatusCommand) error {
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

func (h ChangeTaskStatusCommandHandler) handle(ctx context.Context, cmd ChangeTaskStatusCommand) ([]kernel.Transition, error) {
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

	t, err := tasks.Get(ctx, cmd.TaskID())
	if err != nil {
		return nil, err
	}
	linked, err := linkedRoute(ctx, routes, t.ID())
	if err != nil {
		return nil, err
	}

	transitions, err := h.apply(actor, t, linked, cmd.Action())
	if err != nil {
		return nil, err
	}

	if err = tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	if linked != nil && touches(transitions, kernel.EntityRoute) {
		if err = routes.Update(ctx, linked); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return transitions, nil
}

func (h ChangeTaskStatusCommandHandler) apply(
	actor *org.User,
	t *task.Task,
	linked *route.Route,
	action TaskAction,
) ([]kernel.Transition, error) {
	switch action {
	case TaskActionStart:
		return h.lifecycle.Start(actor, t, linked)
	case TaskActionHold:
		return h.lifecycle.Hold(actor, t)
	case TaskActionResume:
		return h.lifecycle.Resume(actor, t)
	case TaskActionComplete:
		return h.lifecycle.Complete(actor, t, linked)
	case TaskActionCancel:
		return h.lifecycle.Cancel(actor, t, linked)
	default:
		return nil, errs.NewValueIsInvalidError("task action")
	}
}
