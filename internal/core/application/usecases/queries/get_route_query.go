package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery reads one route with its waypoint progress.
type GetRouteQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRouteQuery(actorID, routeID kernel.UUID) (GetRouteQuery, error) {
	if err := errors.Join(validateID("actor id", actorID), validateID("route id", routeID)); err != nil {
		return GetRouteQuery{}, err
	}
	return GetRouteQuery{actorID: actorID, routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

func (q GetRouteQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetRouteQuery) RouteID() kernel.UUID { return q.routeID }

type WaypointResponse struct {
	Location       string
	Order          int
	Completed      bool
	CompletionTime *time.Time
}

// RouteResponse is the read view of a route. ActiveWaypoint is the order of
// the first pending waypoint, nil once all are done. OnTime is nil until the
// route has both a planned start and an end time.
type RouteResponse struct {
	ID               kernel.UUID
	CompanyID        kernel.UUID
	TaskID           *kernel.UUID
	DriverID         *kernel.UUID
	Status           string
	StartPoint       string
	EndPoint         string
	Distance         decimal.Decimal
	EstimatedMinutes int
	StartTime        *time.Time
	ActualStartTime  *time.Time
	EndTime          *time.Time
	Waypoints        []WaypointResponse
	ActiveWaypoint   *int
	Total            int
	Completed        int
	Percentage       float64
	OnTime           *bool
}
