package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/policy"
)

type GetRouteQueryHandler struct {
	repos ReadModel
}

func NewGetRouteQueryHandler(repos ReadModel) GetRouteQueryHandler {
	return GetRouteQueryHandler{repos: repos}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return RouteResponse{}, err
	}

	actor, err := h.repos.UserRepository().Get(ctx, query.ActorID())
	if err != nil {
		return RouteResponse{}, err
	}
	r, err := h.repos.RouteRepository().Get(ctx, query.RouteID())
	if err != nil {
		return RouteResponse{}, err
	}
	if err = policy.Require(policy.CanViewRoute(actor, r), actor, policy.ActionView,
		kernel.EntityRoute+" "+r.ID().String()); err != nil {
		return RouteResponse{}, err
	}

	return routeResponse(r), nil
}

func routeResponse(r *route.Route) RouteResponse {
	progress := r.Progress()
	resp := RouteResponse{
		ID:               r.ID(),
		CompanyID:        r.CompanyID(),
		TaskID:           r.TaskID(),
		DriverID:         r.DriverID(),
		Status:           r.Status().String(),
		StartPoint:       r.StartPoint(),
		EndPoint:         r.EndPoint(),
		Distance:         r.Distance(),
		EstimatedMinutes: r.EstimatedMinutes(),
		StartTime:        r.StartTime(),
		ActualStartTime:  r.ActualStartTime(),
		EndTime:          r.EndTime(),
		Total:            progress.Total,
		Completed:        progress.Completed,
		Percentage:       progress.Percentage,
	}

	waypoints := r.Waypoints()
	resp.Waypoints = make([]WaypointResponse, 0, len(waypoints))
	for _, w := range waypoints {
		resp.Waypoints = append(resp.Waypoints, WaypointResponse{
			Location:       w.Location(),
			Order:          w.Order(),
			Completed:      w.Completed(),
			CompletionTime: w.CompletionTime(),
		})
	}

	if active, ok := r.ActiveWaypoint(); ok {
		order := active.Order()
		resp.ActiveWaypoint = &order
	}
	if onTime, counted := r.OnTime(); counted {
		resp.OnTime = &onTime
	}
	return resp
}
