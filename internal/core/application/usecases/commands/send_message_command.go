package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrSendMessageCommandIsNotConstructed = errors.New(
	"SendMessageCommand must be created via NewSendMessageCommand constructor",
)

// SendMessageCommand stores a message. With a TaskID and no RecipientID the
// recipient is the counterpart in the task thread.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	recipientID *kernel.UUID
	taskID      *kernel.UUID
	body        string

	guard guard.ConstructorGuard
}

func NewSendMessageCommand(actorID kernel.UUID, recipientID, taskID *kernel.UUID, body string) (SendMessageCommand, error) {
	var target error
	if recipientID == nil && taskID == nil {
		target = errs.NewValueIsRequiredError("recipient or task")
	}
	if err := errors.Join(
		validateID("actor id", actorID),
		validateOptionalID("recipient id", recipientID),
		validateOptionalID("task id", taskID),
		target,
	); err != nil {
		return SendMessageCommand{}, err
	}

	return SendMessageCommand{
		actorID:     actorID,
		recipientID: recipientID,
		taskID:      taskID,
		body:        body,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

func (c SendMessageCommand) ActorID() kernel.UUID      { return c.actorID }
func (c SendMessageCommand) RecipientID() *kernel.UUID { return c.recipientID }
func (c SendMessageCommand) TaskID() *kernel.UUID      { return c.taskID }
func (c SendMessageCommand) Body() string              { return c.body }
