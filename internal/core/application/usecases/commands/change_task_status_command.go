package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrChangeTaskStatusCommandIsNotConstructed = errors.New(
	"ChangeTaskStatusCommand must be created via NewChangeTaskStatusCommand constructor",
)

// TaskAction names a task transition requested by a user.
type TaskAction string

const (
	TaskActionStart    TaskAction = "start"
	TaskActionHold     TaskAction = "hold"
	TaskActionResume   TaskAction = "resume"
	TaskActionComplete TaskAction = "complete"
	TaskActionCancel   TaskAction = "cancel"
)

// ParseTaskAction accepts the lower-case action names.
func ParseTaskAction(s string) (TaskAction, error) {
	a := TaskAction(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case TaskActionStart, TaskActionHold, TaskActionResume, TaskActionComplete, TaskActionCancel:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidError("task action")
	}
}

// ChangeTaskStatusCommand moves a task through its state machine. Start,
// Complete and Cancel cascade into the linked route.
type ChangeTaskStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	taskID  kernel.UUID
	action  TaskAction

	guard guard.ConstructorGuard
}

func NewChangeTaskStatusCommand(actorID, taskID kernel.UUID, action TaskAction) (ChangeTaskStatusCommand, error) {
	_, actionErr := ParseTaskAction(string(action))
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("task id", taskID),
		actionErr,
	); err != nil {
		return ChangeTaskStatusCommand{}, err
	}

	return ChangeTaskStatusCommand{
		actorID: actorID,
		taskID:  taskID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTaskStatusCommandIsNotConstructed)
}

func (c ChangeTaskStatusCommand) ActorID() kernel.UUID { return c.actorID }
func (c ChangeTaskStatusCommand) TaskID() kernel.UUID  { return c.taskID }
func (c ChangeTaskStatusCommand) Action() TaskAction   { return c.action }
