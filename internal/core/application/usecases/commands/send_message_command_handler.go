package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/policy"
	"logistics/internal/pkg/errs"
)

// SendMessageCommandHandler persists messages. Delivery is someone else's job.
type SendMessageCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewSendMessageCommandHandler(uowFactory UoWFactory, clock kernel.Clock) SendMessageCommandHandler {
	return SendMessageCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) (kernel.UUID, error) {
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

	users := uow.UserRepository()
	actor, err := users.Get(ctx, cmd.ActorID())
	if err != nil {
		return kernel.UUID{}, err
	}

	var t *task.Task
	if cmd.TaskID() != nil {
		if t, err = uow.TaskRepository().Get(ctx, *cmd.TaskID()); err != nil {
			return kernel.UUID{}, err
		}
		if err = policy.Require(policy.CanViewTask(actor, t), actor, policy.ActionMessage,
			kernel.EntityTask+" "+t.ID().String()); err != nil {
			return kernel.UUID{}, err
		}
	}

	recipientID, err := resolveRecipient(actor, t, cmd.RecipientID())
	if err != nil {
		return kernel.UUID{}, err
	}
	recipient, err := users.Get(ctx, recipientID)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = policy.Require(policy.CanMessage(actor, recipient), actor, policy.ActionMessage,
		"user "+recipient.ID().String()); err != nil {
		return kernel.UUID{}, err
	}

	companyID, ok := messageCompany(actor, recipient, t)
	if !ok {
		return kernel.UUID{}, errs.NewValueIsRequiredError("message company")
	}

	m, err := document.NewMessage(kernel.NewUUID(), actor.ID(), recipient.ID(), cmd.TaskID(),
		companyID, cmd.Body(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.MessageRepository().Add(ctx, m); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return m.ID(), nil
}

func resolveRecipient(actor *org.User, t *task.Task, explicit *kernel.UUID) (kernel.UUID, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if id, ok := policy.TaskMessageRecipient(actor, t); ok {
		return id, nil
	}
	return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("recipient id",
		errors.New("task has no assignee to write to"))
}

// messageCompany scopes the message: the task's company, else the sender's,
// else the recipient's (admins have no company).
func messageCompany(actor, recipient *org.User, t *task.Task) (kernel.UUID, bool) {
	if t != nil {
		return t.CompanyID(), true
	}
	if id, ok := actor.CompanyID(); ok {
		return id, true
	}
	return recipient.CompanyID()
}
