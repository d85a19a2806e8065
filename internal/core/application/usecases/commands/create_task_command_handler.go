package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CreateTaskCommandHandler creates tasks in state New.
type CreateTaskCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.TaskLifecycle
	cache      ports.ReportCache
}

// NewCreateTaskCommandHandler accepts a nil cache.
func NewCreateTaskCommandHandler(uowFactory LifecycleUoWFactory, clock kernel.Clock, cache ports.ReportCache) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewTaskLifecycle(clock),
		cache:      cache,
	}
}

// Handle returns the id of the created task. The actor is authorized before
// the assignee is looked up.
func (h CreateTaskCommandHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (kernel.UUID, error) {
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

func (h CreateTaskCommandHandler) handle(ctx context.Context, cmd CreateTaskCommand) (kernel.UUID, error) {
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
	if err = policy.Require(policy.CanCreate(actor, cmd.CompanyID()), actor, policy.ActionCreate,
		"company "+cmd.CompanyID().String()); err != nil {
		return kernel.UUID{}, err
	}

	var assignee *org.User
	if cmd.AssigneeID() != nil {
		if assignee, err = referencedUser(ctx, users, "assignee id", *cmd.AssigneeID()); err != nil {
			return kernel.UUID{}, err
		}
	}

	t, err := h.lifecycle.Create(actor, cmd.CompanyID(), cmd.Title(), cmd.Description(), assignee, cmd.Deadline())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.TaskRepository().Add(ctx, t); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return t.ID(), nil
}
