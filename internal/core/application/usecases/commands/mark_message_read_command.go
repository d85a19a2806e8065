package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMarkMessageReadCommandIsNotConstructed = errors.New(
	"MarkMessageReadCommand must be created via NewMarkMessageReadCommand constructor",
)

type MarkMessageReadCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	messageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkMessageReadCommand(actorID, messageID kernel.UUID) (MarkMessageReadCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("message id", messageID),
	); err != nil {
		return MarkMessageReadCommand{}, err
	}

	return MarkMessageReadCommand{actorID: actorID, messageID: messageID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkMessageReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkMessageReadCommandIsNotConstructed)
}

func (c MarkMessageReadCommand) ActorID() kernel.UUID   { return c.actorID }
func (c MarkMessageReadCommand) MessageID() kernel.UUID { return c.messageID }
