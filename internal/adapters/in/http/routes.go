package http

import (
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

// CreateRoute handles POST /api/v1/companies/:companyID/routes.
func (s *Server) CreateRoute(c echo.Context) error {
	companyID, err := pathID(c, "companyID")
	if err != nil {
		return err
	}
	var req CreateRouteRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	plan, err := req.plan()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateRouteCommand(actorFrom(c), companyID, plan, req.TaskID, req.DriverID)
	if err != nil {
		return err
	}
	id, err := s.uc.CreateRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return created(c, id)
}

// GetRoute handles GET /api/v1/routes/:routeID.
func (s *Server) GetRoute(c echo.Context) error {
	routeID, err := pathID(c, "routeID")
	if err != nil {
		return err
	}
	query, err := queries.NewGetRouteQuery(actorFrom(c), routeID)
	if err != nil {
		return err
	}
	r, err := s.uc.GetRoute.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoute(r))
}

// UpdateRoute handles PUT /api/v1/routes/:routeID.
func (s *Server) UpdateRoute(c echo.Context) error {
	routeID, err := pathID(c, "routeID")
	if err != nil {
		return err
	}
	var req UpdateRouteRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	var plan *route.Plan
	if req.Plan != nil {
		p, planErr := req.Plan.plan()
		if planErr != nil {
			return planErr
		}
		plan = &p
	}
	cmd, err := commands.NewUpdateRouteCommand(actorFrom(c), routeID, plan, req.DriverID)
	if err != nil {
		return err
	}
	if err = s.uc.UpdateRoute.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeRouteStatus handles POST /api/v1/routes/:routeID/status with an
// action of start, complete or cancel.
func (s *Server) ChangeRouteStatus(c echo.Context) error {
	routeID, err := pathID(c, "routeID")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	action, err := commands.ParseRouteAction(req.Action)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeRouteStatusCommand(actorFrom(c), routeID, action)
	if err != nil {
		return err
	}
	if err = s.uc.ChangeRouteStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CompleteWaypoint handles POST /api/v1/routes/:routeID/waypoints/:order/complete.
func (s *Server) CompleteWaypoint(c echo.Context) error {
	routeID, err := pathID(c, "routeID")
	if err != nil {
		return err
	}
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order").SetInternal(err)
	}
	cmd, err := commands.NewCompleteWaypointCommand(actorFrom(c), routeID, order)
	if err != nil {
		return err
	}
	if err = s.uc.CompleteWaypoint.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteRoute handles DELETE /api/v1/routes/:routeID.
func (s *Server) DeleteRoute(c echo.Context) error {
	routeID, err := pathID(c, "routeID")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteRouteCommand(actorFrom(c), routeID)
	if err != nil {
		return err
	}
	if err = s.uc.DeleteRoute.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
