package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/ports"
)

type DeleteTaskCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.ReportCache
}

// NewDeleteTaskCommandHandler accepts a nil cache.
func NewDeleteTaskCommandHandler(uowFactory UoWFactory, cache ports.ReportCache) DeleteTaskCommandHandler {
	return DeleteTaskCommandHandler{uowFactory: uowFactory, cache: cache}
}

// Handle deletes the task graph in one transaction; nothing is removed when
// any step fails.
func (h DeleteTaskCommandHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
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

func (h DeleteTaskCommandHandler) handle(ctx context.Context, cmd DeleteTaskCommand) (kernel.UUID, error) {
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
	t, err := uow.TaskRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = policy.Require(policy.CanDeleteTask(actor, t), actor, policy.ActionDelete,
		kernel.EntityTask+" "+t.ID().String()); err != nil {
		return kernel.UUID{}, err
	}

	if err = deleteTaskGraph(ctx, uow, t.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return t.CompanyID(), nil
}
