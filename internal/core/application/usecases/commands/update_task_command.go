package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateTaskCommandIsNotConstructed = errors.New(
	"UpdateTaskCommand must be created via NewUpdateTaskCommand constructor",
)

// UpdateTaskCommand edits the title, description and deadline of a task.
// A nil deadline clears it.
type UpdateTaskCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	taskID      kernel.UUID
	title       string
	description string
	deadline    *time.Time

	guard guard.ConstructorGuard
}

func NewUpdateTaskCommand(
	actorID, taskID kernel.UUID,
	title, description string,
	deadline *time.Time,
) (UpdateTaskCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("task id", taskID),
	); err != nil {
		return UpdateTaskCommand{}, err
	}

	return UpdateTaskCommand{
		actorID:     actorID,
		taskID:      taskID,
		title:       title,
		description: description,
		deadline:    deadline,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTaskCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskCommandIsNotConstructed)
}

func (c UpdateTaskCommand) ActorID() kernel.UUID { return c.actorID }
func (c UpdateTaskCommand) TaskID() kernel.UUID  { return c.taskID }
func (c UpdateTaskCommand) Title() string        { return c.title }
func (c UpdateTaskCommand) Description() string  { return c.description }
func (c UpdateTaskCommand) Deadline() *time.Time { return c.deadline }
