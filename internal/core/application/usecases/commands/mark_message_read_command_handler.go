package commands

import (
	"context"

	"logistics/internal/core/domain/policy"
)

// MarkMessageReadCommandHandler lets a recipient acknowledge a message.
// Marking an already read message again is a no-op that still succeeds.
type MarkMessageReadCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkMessageReadCommandHandler(uowFactory UoWFactory) MarkMessageReadCommandHandler {
	return MarkMessageReadCommandHandler{uowFactory: uowFactory}
}

func (h MarkMessageReadCommandHandler) Handle(ctx context.Context, cmd MarkMessageReadCommand) error {
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

	messages := uow.MessageRepository()
	m, err := messages.Get(ctx, cmd.MessageID())
	if err != nil {
		return err
	}

	if err = policy.Require(policy.CanMarkMessageRead(actor, m), actor, policy.ActionMessage,
		"message "+m.ID().String()); err != nil {
		return err
	}
	if m.Read() {
		return nil
	}

	m.MarkRead()
	if err = messages.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
