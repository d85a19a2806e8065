package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

type UpdateTaskCommandHandler struct {
	uowFactory LifecycleUoWFactory
	lifecycle  services.TaskLifecycle
	cache      ports.ReportCache
}

func NewUpdateTaskCommandHandler(uowFactory LifecycleUoWFactory, clock kernel.Clock, cache ports.ReportCache) UpdateTaskCommandHandler {
	return UpdateTaskCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewTaskLifecycle(clock),
		cache:      cache,
	}
}

// Handle retries once when a concurrent write wins the version check.
func (h UpdateTaskCommandHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
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

func (h UpdateTaskCommandHandler) handle(ctx context.Context, cmd UpdateTaskCommand) (kernel.UUID, error) {
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

	tasks := uow.TaskRepository()
	t, err := tasks.Get(ctx, cmd.TaskID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.lifecycle.Update(actor, t, cmd.Title(), cmd.Description(), cmd.Deadline()); err != nil {
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
