package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateTaskCommandIsNotConstructed = errors.New(
	"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
)

// CreateTaskCommand asks for a new task in a company. AssigneeID and Deadline are optional.
//
// Example:
//
//	cmd, err := NewCreateTaskCommand(operatorID, companyID, "Deliver pallets", "", &driverID, &deadline)
//	if err != nil {
//	    return err
//	}
//	taskID, err := handler.Handle(ctx, cmd)
type CreateTaskCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	companyID   kernel.UUID
	title       string
	description string
	assigneeID  *kernel.UUID
	deadline    *time.Time

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand validates identifiers only; title rules live on the Task.
func NewCreateTaskCommand(
	actorID, companyID kernel.UUID,
	title, description string,
	assigneeID *kernel.UUID,
	deadline *time.Time,
) (CreateTaskCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("company id", companyID),
		validateOptionalID("assignee id", assigneeID),
	); err != nil {
		return CreateTaskCommand{}, err
	}

	return CreateTaskCommand{
		actorID:     actorID,
		companyID:   companyID,
		title:       title,
		description: description,
		assigneeID:  assigneeID,
		deadline:    deadline,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

func (c CreateTaskCommand) ActorID() kernel.UUID     { return c.actorID }
func (c CreateTaskCommand) CompanyID() kernel.UUID   { return c.companyID }
func (c CreateTaskCommand) Title() string            { return c.title }
func (c CreateTaskCommand) Description() string      { return c.description }
func (c CreateTaskCommand) AssigneeID() *kernel.UUID { return c.assigneeID }
func (c CreateTaskCommand) Deadline() *time.Time     { return c.deadline }
