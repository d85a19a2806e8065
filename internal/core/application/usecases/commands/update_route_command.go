package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand replaces the plan of a route that has not started yet.
// A non-nil DriverID also reassigns the driver.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	routeID  kernel.UUID
	plan     *route.Plan
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateRouteCommand(
	actorID, routeID kernel.UUID,
	plan *route.Plan,
	driverID *kernel.UUID,
) (UpdateRouteCommand, error) {
	var nothing error
	if plan == nil && driverID == nil {
		nothing = errs.NewValueIsRequiredError("plan or driver")
	}
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("route id", routeID),
		validateOptionalID("driver id", driverID),
		nothing,
	); err != nil {
		return UpdateRouteCommand{}, err
	}

	return UpdateRouteCommand{
		actorID:  actorID,
		routeID:  routeID,
		plan:     plan,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

func (c UpdateRouteCommand) ActorID() kernel.UUID   { return c.actorID }
func (c UpdateRouteCommand) RouteID() kernel.UUID   { return c.routeID }
func (c UpdateRouteCommand) Plan() *route.Plan      { return c.plan }
func (c UpdateRouteCommand) DriverID() *kernel.UUID { return c.driverID }
