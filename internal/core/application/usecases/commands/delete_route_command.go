package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteRouteCommandIsNotConstructed = errors.New(
	"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
)

// DeleteRouteCommand removes a route and its documents. The linked task stays.
type DeleteRouteCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRouteCommand(actorID, routeID kernel.UUID) (DeleteRouteCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("route id", routeID),
	); err != nil {
		return DeleteRouteCommand{}, err
	}

	return DeleteRouteCommand{actorID: actorID, routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

func (c DeleteRouteCommand) ActorID() kernel.UUID { return c.actorID }
func (c DeleteRouteCommand) RouteID() kernel.UUID { return c.routeID }
