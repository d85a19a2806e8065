package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignTaskCommandIsNotConstructed = errors.New(
	"AssignTaskCommand must be created via NewAssignTaskCommand constructor",
)

// AssignTaskCommand puts a driver on a task. The task status does not change.
type AssignTaskCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	taskID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignTaskCommand(actorID, taskID, driverID kernel.UUID) (AssignTaskCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("task id", taskID),
		validateID("driver id", driverID),
	); err != nil {
		return AssignTaskCommand{}, err
	}

	return AssignTaskCommand{
		actorID:  actorID,
		taskID:   taskID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignTaskCommand) Validate() error {
	return c.guard.Validate(ErrAssignTaskCommandIsNotConstructed)
}

func (c AssignTaskCommand) ActorID() kernel.UUID  { return c.actorID }
func (c AssignTaskCommand) TaskID() kernel.UUID   { return c.taskID }
func (c AssignTaskCommand) DriverID() kernel.UUID { return c.driverID }
