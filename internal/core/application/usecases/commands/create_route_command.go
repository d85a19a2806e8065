package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand plans a route. TaskID and DriverID are optional; a task
// can carry at most one route.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	companyID kernel.UUID
	plan      route.Plan
	taskID    *kernel.UUID
	driverID  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateRouteCommand(
	actorID, companyID kernel.UUID,
	plan route.Plan,
	taskID, driverID *kernel.UUID,
) (CreateRouteCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("company id", companyID),
		validateOptionalID("task id", taskID),
		validateOptionalID("driver id", driverID),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		actorID:   actorID,
		companyID: companyID,
		plan:      plan,
		taskID:    taskID,
		driverID:  driverID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) ActorID() kernel.UUID   { return c.actorID }
func (c CreateRouteCommand) CompanyID() kernel.UUID { return c.companyID }
func (c CreateRouteCommand) Plan() route.Plan       { return c.plan }
func (c CreateRouteCommand) TaskID() *kernel.UUID   { return c.taskID }
func (c CreateRouteCommand) DriverID() *kernel.UUID { return c.driverID }
