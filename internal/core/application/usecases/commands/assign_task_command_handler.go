package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

type AssignTaskCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.TaskLifecycle
	cache      ports.ReportCache
}

func NewAssignTaskCommandHandler(uowFactory LifecycleUoWFactory, clock kernel.Clock, cache ports.ReportCache) AssignTaskCommandHandler {
	return AssignTaskCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewTaskLifecycle(clock),
		cache:      cache,
	}
}

func (h AssignTaskCommandHandler) Handle(ctx context.Context, cmd AssignTaskCommand) error {
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

func (h AssignTaskCommandHandler) handle(ctx context.Context, cmd AssignTaskCommand) (kernel.UUID, error) {
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

	tasks := uow.TaskRepository()
	t, err := tasks.Get(ctx, cmd.TaskID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = policy.Require(policy.CanEditTask(actor, t), actor, policy.ActionEdit,
		kernel.EntityTask+" "+t.ID().String()); err != nil {
		return kernel.UUID{}, err
	}

	driver, err := referencedUser(ctx, users, "driver id", cmd.DriverID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.lifecycle.Assign(actor, t, driver); err != nil {
		return kernel.UUID{}, err
	}

	if err = tasks.Update(ctx, t); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return t.CompanyID(), nil
}
