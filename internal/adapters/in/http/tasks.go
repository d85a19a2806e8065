package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/task"

	"github.com/labstack/echo/v4"
)

// CreateTask handles POST /api/v1/companies/:companyID/tasks.
func (s *Server) CreateTask(c echo.Context) error {
	companyID, err := pathID(c, "companyID")
	if err != nil {
		return err
	}
	var req TaskRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTaskCommand(actorFrom(c), companyID, req.Title, req.Description, req.AssigneeID, req.Deadline)
	if err != nil {
		return err
	}
	id, err := s.uc.CreateTask.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return created(c, id)
}

// ListTasks handles GET /api/v1/companies/:companyID/tasks.
// Filters: repeated status, created_from and created_to (RFC 3339).
func (s *Server) ListTasks(c echo.Context) error {
	companyID, err := pathID(c, "companyID")
	if err != nil {
		return err
	}

	var statuses []task.Status
	for _, raw := range c.QueryParams()["status"] {
		st, parseErr := task.ParseStatus(raw)
		if parseErr != nil {
			return parseErr
		}
		statuses = append(statuses, st)
	}
	from, err := queryTime(c, "created_from")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "created_to")
	if err != nil {
		return err
	}

	query, err := queries.NewListTasksQuery(actorFrom(c), companyID, statuses, from, to)
	if err != nil {
		return err
	}
	tasks, err := s.uc.ListTasks.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Task, len(tasks))
	for i, t := range tasks {
		response[i] = toTask(t)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTask handles GET /api/v1/tasks/:taskID.
func (s *Server) GetTask(c echo.Context) error {
	taskID, err := pathID(c, "taskID")
	if err != nil {
		return err
	}
	query, err := queries.NewGetTaskQuery(actorFrom(c), taskID)
	if err != nil {
		return err
	}
	t, err := s.uc.GetTask.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTask(t))
}

// UpdateTask handles PUT /api/v1/tasks/:taskID. The assignee is changed
// through the assignee endpoint, not here.
func (s *Server) UpdateTask(c echo.Context) error {
	taskID, err := pathID(c, "taskID")
	if err != nil {
		return err
	}
	var req TaskRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateTaskCommand(actorFrom(c), taskID, req.Title, req.Description, req.Deadline)
	if err != nil {
		return err
	}
	if err = s.uc.UpdateTask.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignTask handles POST /api/v1/tasks/:taskID/assignee.
func (s *Server) AssignTask(c echo.Context) error {
	taskID, err := pathID(c, "taskID")
	if err != nil {
		return err
	}
	var req AssignRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAssignTaskCommand(actorFrom(c), taskID, req.DriverID)
	if err != nil {
		return err
	}
	if err = s.uc.AssignTask.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeTaskStatus handles POST /api/v1/tasks/:taskID/status with an action
// of start, hold, resume, complete or cancel.
func (s *Server) ChangeTaskStatus(c echo.Context) error {
	taskID, err := pathID(c, "taskID")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	action, err := commands.ParseTaskAction(req.Action)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeTaskStatusCommand(actorFrom(c), taskID, action)
	if err != nil {
		return err
	}
	if err = s.uc.ChangeTaskStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteTask handles DELETE /api/v1/tasks/:taskID.
func (s *Server) DeleteTask(c echo.Context) error {
	taskID, err := pathID(c, "taskID")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteTaskCommand(actorFrom(c), taskID)
	if err != nil {
		return err
	}
	if err = s.uc.DeleteTask.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTaskAttachments handles GET /api/v1/tasks/:taskID/attachments.
func (s *Server) ListTaskAttachments(c echo.Context) error {
	taskID, err := pathID(c, "taskID")
	if err != nil {
		return err
	}
	query, err := queries.NewListTaskAttachmentsQuery(actorFrom(c), taskID)
	if err != nil {
		return err
	}
	a, err := s.uc.ListTaskAttachments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAttachments(a))
}

func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name).SetInternal(err)
	}
	return &t, nil
}
