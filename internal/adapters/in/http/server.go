// Package http exposes the use cases over a JSON API.
//
// Every route under /api/v1 needs a bearer token whose user id becomes the
// actor of the use case. Access decisions stay in the core; this layer only
// maps errors onto status codes.
package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Handler is a use case producing a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// VoidHandler is a use case producing only an error.
type VoidHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// UseCases are the application handlers served over HTTP.
type UseCases struct {
	CreateTask       Handler[commands.CreateTaskCommand, kernel.UUID]
	UpdateTask       VoidHandler[commands.UpdateTaskCommand]
	AssignTask       VoidHandler[commands.AssignTaskCommand]
	ChangeTaskStatus VoidHandler[commands.ChangeTaskStatusCommand]
	DeleteTask       VoidHandler[commands.DeleteTaskCommand]

	CreateRoute       Handler[commands.CreateRouteCommand, kernel.UUID]
	UpdateRoute       VoidHandler[commands.UpdateRouteCommand]
	ChangeRouteStatus VoidHandler[commands.ChangeRouteStatusCommand]
	CompleteWaypoint  VoidHandler[commands.CompleteWaypointCommand]
	DeleteRoute       VoidHandler[commands.DeleteRouteCommand]

	AttachDocument Handler[commands.AttachDocumentCommand, kernel.UUID]
	UpdateDocument VoidHandler[commands.UpdateDocumentCommand]
	DeleteDocument VoidHandler[commands.DeleteDocumentCommand]
	SendMessage    Handler[commands.SendMessageCommand, kernel.UUID]
	MarkRead       VoidHandler[commands.MarkMessageReadCommand]

	ChangeUserRole VoidHandler[commands.ChangeUserRoleCommand]
	DeleteCompany  VoidHandler[commands.DeleteCompanyCommand]

	GetTask                 Handler[queries.GetTaskQuery, queries.TaskResponse]
	ListTasks               Handler[queries.ListTasksQuery, []queries.TaskResponse]
	ListTaskAttachments     Handler[queries.ListTaskAttachmentsQuery, queries.TaskAttachmentsResponse]
	GetRoute                Handler[queries.GetRouteQuery, queries.RouteResponse]
	GetCompanyReport        Handler[queries.GetCompanyReportQuery, statistics.Report]
	ListStatisticsSnapshots Handler[queries.ListStatisticsSnapshotsQuery, []statistics.Report]
}

// Server routes requests to the use cases.
type Server struct {
	uc     UseCases
	secret string
	clock  kernel.Clock
	log    zerolog.Logger
}

func NewServer(uc UseCases, jwtSecret string, clock kernel.Clock, log zerolog.Logger) *Server {
	return &Server{uc: uc, secret: jwtSecret, clock: clock, log: log}
}

// Echo builds the echo instance with every route registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			ev := s.log.Info()
			if v.Error != nil {
				ev = s.log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", ActorMiddleware(s.secret))

	api.POST("/companies/:companyID/tasks", s.CreateTask)
	api.GET("/companies/:companyID/tasks", s.ListTasks)
	api.GET("/tasks/:taskID", s.GetTask)
	api.PUT("/tasks/:taskID", s.UpdateTask)
	api.POST("/tasks/:taskID/assignee", s.AssignTask)
	api.POST("/tasks/:taskID/status", s.ChangeTaskStatus)
	api.DELETE("/tasks/:taskID", s.DeleteTask)
	api.GET("/tasks/:taskID/attachments", s.ListTaskAttachments)

	api.POST("/companies/:companyID/routes", s.CreateRoute)
	api.GET("/routes/:routeID", s.GetRoute)
	api.PUT("/routes/:routeID", s.UpdateRoute)
	api.POST("/routes/:routeID/status", s.ChangeRouteStatus)
	api.POST("/routes/:routeID/waypoints/:order/complete", s.CompleteWaypoint)
	api.DELETE("/routes/:routeID", s.DeleteRoute)

	api.POST("/companies/:companyID/documents", s.AttachDocument)
	api.PUT("/documents/:documentID", s.UpdateDocument)
	api.DELETE("/documents/:documentID", s.DeleteDocument)
	api.POST("/messages", s.SendMessage)
	api.POST("/messages/:messageID/read", s.MarkMessageRead)

	api.PUT("/users/:userID/role", s.ChangeUserRole)
	api.DELETE("/companies/:companyID", s.DeleteCompany)
	api.GET("/companies/:companyID/statistics", s.GetCompanyReport)
	api.GET("/companies/:companyID/statistics/snapshots", s.ListStatisticsSnapshots)

	return e
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name).SetInternal(err)
	}
	return id, nil
}

func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	return nil
}

func created(c echo.Context, id kernel.UUID) error {
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}
