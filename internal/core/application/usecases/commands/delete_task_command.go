package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteTaskCommandIsNotConstructed = errors.New(
	"DeleteTaskCommand must be created via NewDeleteTaskCommand constructor",
)

// DeleteTaskCommand removes a task with its route, documents and messages.
type DeleteTaskCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	taskID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTaskCommand(actorID, taskID kernel.UUID) (DeleteTaskCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("task id", taskID),
	); err != nil {
		return DeleteTaskCommand{}, err
	}

	return DeleteTaskCommand{actorID: actorID, taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTaskCommandIsNotConstructed)
}

func (c DeleteTaskCommand) ActorID() kernel.UUID { return c.actorID }
func (c DeleteTaskCommand) TaskID() kernel.UUID  { return c.taskID }
