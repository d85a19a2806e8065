package queries

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/policy"
	"logistics/internal/pkg/errs"
)

type GetTaskQueryHandler struct {
	repos ReadModel
	clock kernel.Clock
}

func NewGetTaskQueryHandler(repos ReadModel, clock kernel.Clock) GetTaskQueryHandler {
	return GetTaskQueryHandler{repos: repos, clock: clock}
}

// Handle answers Forbidden when the task exists but is hidden from the actor.
func (h GetTaskQueryHandler) Handle(ctx context.Context, query GetTaskQuery) (TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return TaskResponse{}, err
	}

	actor, err := h.repos.UserRepository().Get(ctx, query.ActorID())
	if err != nil {
		return TaskResponse{}, err
	}
	t, err := h.repos.TaskRepository().Get(ctx, query.TaskID())
	if err != nil {
		return TaskResponse{}, err
	}
	if err = policy.Require(policy.CanViewTask(actor, t), actor, policy.ActionView,
		kernel.EntityTask+" "+t.ID().String()); err != nil {
		return TaskResponse{}, err
	}

	resp := taskResponse(t, h.clock.Now())
	r, err := h.repos.RouteRepository().GetByTask(ctx, t.ID())
	switch {
	case err == nil:
		resp.RouteID = kernel.Ptr(r.ID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return TaskResponse{}, err
	}
	return resp, nil
}

func taskResponse(t *task.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CompanyID:   t.CompanyID(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.Assignee(),
		Deadline:    t.Deadline(),
		Overdue:     t.IsOverdue(now),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}
