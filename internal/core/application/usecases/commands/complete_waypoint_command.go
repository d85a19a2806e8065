package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCompleteWaypointCommandIsNotConstructed = errors.New(
	"CompleteWaypointCommand must be created via NewCompleteWaypointCommand constructor",
)

// CompleteWaypointCommand marks the waypoint with the given order as done.
// Orders start at 1.
type CompleteWaypointCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	routeID kernel.UUID
	order   int

	guard guard.ConstructorGuard
}

func NewCompleteWaypointCommand(actorID, routeID kernel.UUID, order int) (CompleteWaypointCommand, error) {
	var orderErr error
	if order < 1 {
		orderErr = errs.NewValueIsOutOfRangeError("waypoint order", order, 1, "unbounded")
	}
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("route id", routeID),
		orderErr,
	); err != nil {
		return CompleteWaypointCommand{}, err
	}

	return CompleteWaypointCommand{
		actorID: actorID,
		routeID: routeID,
		order:   order,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteWaypointCommand) Validate() error {
	return c.guard.Validate(ErrCompleteWaypointCommandIsNotConstructed)
}

func (c CompleteWaypointCommand) ActorID() kernel.UUID { return c.actorID }
func (c CompleteWaypointCommand) RouteID() kernel.UUID { return c.routeID }
func (c CompleteWaypointCommand) Order() int           { return c.order }
