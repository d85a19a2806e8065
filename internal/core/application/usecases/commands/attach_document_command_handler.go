package commands

import (
	"context"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/policy"
)

type AttachDocumentCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewAttachDocumentCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AttachDocumentCommandHandler {
	return AttachDocumentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AttachDocumentCommandHandler) Handle(ctx context.Context, cmd AttachDocumentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

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
	links, err := loadLinks(ctx, uow, cmd.Links())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = policy.Require(policy.CanAttachDocument(actor, cmd.CompanyID(), links), actor, policy.ActionCreate,
		"company "+cmd.CompanyID().String()); err != nil {
		return kernel.UUID{}, err
	}

	d, err := document.NewDocument(kernel.NewUUID(), cmd.Title(), cmd.FileRef(), cmd.Category(),
		actor.ID(), cmd.CompanyID(), cmd.Links(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}
	d.GrantAccess(cmd.AccessUserID())

	if err = uow.DocumentRepository().Add(ctx, d); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return d.ID(), nil
}
