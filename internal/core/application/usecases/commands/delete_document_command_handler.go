package commands

import (
	"context"

	"logistics/internal/core/domain/policy"
)

type DeleteDocumentCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteDocumentCommandHandler(uowFactory UoWFactory) DeleteDocumentCommandHandler {
	return DeleteDocumentCommandHandler{uowFactory: uowFactory}
}

func (h DeleteDocumentCommandHandler) Handle(ctx context.Context, cmd DeleteDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	docs := uow.DocumentRepository()
	d, err := docs.Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}
	links, err := loadLinks(ctx, uow, d.Links())
	if err != nil {
		return err
	}

	if err = policy.Require(policy.CanDeleteDocument(actor, d, links), actor, policy.ActionDelete,
		"document "+d.ID().String()); err != nil {
		return err
	}

	if err = docs.Delete(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
