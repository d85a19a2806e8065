package commands

import (
	"context"

	"logistics/internal/core/domain/policy"
)

type UpdateDocumentCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateDocumentCommandHandler(uowFactory UoWFactory) UpdateDocumentCommandHandler {
	return UpdateDocumentCommandHandler{uowFactory: uowFactory}
}

func (h UpdateDocumentCommandHandler) Handle(ctx context.Context, cmd UpdateDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h UpdateDocumentCommandHandler) handle(ctx context.Context, cmd UpdateDocumentCommand) error {
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

	if err = policy.Require(policy.CanEditDocument(actor, d), actor, policy.ActionEdit,
		"document "+d.ID().String()); err != nil {
		return err
	}

	if err = d.Update(cmd.Title(), cmd.Category()); err != nil {
		return err
	}
	d.GrantAccess(cmd.AccessUserID())

	if err = docs.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
