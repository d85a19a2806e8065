package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrChangeRouteStatusCommandIsNotConstructed = errors.New(
	"ChangeRouteStatusCommand must be created via NewChangeRouteStatusCommand constructor",
)

// RouteAction names a route transition requested by a user.
type RouteAction string

const (
	RouteActionStart    RouteAction = "start"
	RouteActionComplete RouteAction = "complete"
	RouteActionCancel   RouteAction = "cancel"
)

func ParseRouteAction(s string) (RouteAction, error) {
	a := RouteAction(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case RouteActionStart, RouteActionComplete, RouteActionCancel:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidError("route action")
	}
}

// ChangeRouteStatusCommand moves a route through its state machine and
// cascades into the linked task.
type ChangeRouteStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	routeID kernel.UUID
	action  RouteAction

	guard guard.ConstructorGuard
}

func NewChangeRouteStatusCommand(actorID, routeID kernel.UUID, action RouteAction) (ChangeRouteStatusCommand, error) {
	_, actionErr := ParseRouteAction(string(action))
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("route id", routeID),
		actionErr,
	); err != nil {
		return ChangeRouteStatusCommand{}, err
	}

	return ChangeRouteStatusCommand{
		actorID: actorID,
		routeID: routeID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeRouteStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRouteStatusCommandIsNotConstructed)
}

func (c ChangeRouteStatusCommand) ActorID() kernel.UUID { return c.actorID }
func (c ChangeRouteStatusCommand) RouteID() kernel.UUID { return c.routeID }
func (c ChangeRouteStatusCommand) Action() RouteAction  { return c.action }
