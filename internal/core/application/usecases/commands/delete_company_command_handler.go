package commands

import (
	"context"

	"logistics/internal/core/domain/policy"
	"logistics/internal/core/ports"
)

// DeleteCompanyCommandHandler runs the company cascade:
// snapshots, tasks (each with its graph), remaining routes, documents and
// messages, then detaches every member profile and deletes the company.
type DeleteCompanyCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.ReportCache
}

// NewDeleteCompanyCommandHandler accepts a nil cache.
func NewDeleteCompanyCommandHandler(uowFactory UoWFactory, cache ports.ReportCache) DeleteCompanyCommandHandler {
	return DeleteCompanyCommandHandler{uowFactory: uowFactory, cache: cache}
}

func (h DeleteCompanyCommandHandler) Handle(ctx context.Context, cmd DeleteCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.handle(ctx, cmd); err != nil {
		return err
	}

	if h.cache != nil {
		_ = h.cache.Invalidate(ctx, cmd.CompanyID())
	}
	return nil
}

func (h DeleteCompanyCommandHandler) handle(ctx context.Context, cmd DeleteCompanyCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	company, err := uow.CompanyRepository().Get(ctx, cmd.CompanyID())
	if err != nil {
		return err
	}

	if err = policy.Require(policy.CanDeleteCompany(actor), actor, policy.ActionDelete,
		"company "+company.ID().String()); err != nil {
		return err
	}

	companyID := company.ID()
	if err = uow.StatisticsRepository().DeleteByCompany(ctx, companyID); err != nil {
		return err
	}

	tasks, err := uow.TaskRepository().ListByCompany(ctx, companyID, ports.TaskFilter{})
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if err = deleteTaskGraph(ctx, uow, t.ID()); err != nil {
			return err
		}
	}

	if err = uow.DocumentRepository().DeleteByCompany(ctx, companyID); err != nil {
		return err
	}
	if err = uow.RouteRepository().DeleteByCompany(ctx, companyID); err != nil {
		return err
	}
	if err = uow.MessageRepository().DeleteByCompany(ctx, companyID); err != nil {
		return err
	}

	users := uow.UserRepository()
	members, err := users.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	for _, u := range members {
		u.DetachCompany()
		if err = users.Update(ctx, u); err != nil {
			return err
		}
	}

	if err = uow.CompanyRepository().Delete(ctx, companyID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
