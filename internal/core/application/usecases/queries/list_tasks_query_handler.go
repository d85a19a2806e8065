package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/ports"
)

// ListTasksQueryHandler filters the company's tasks through CanViewTask.
// Drivers therefore only see what is assigned to them; outsiders see nothing.
type ListTasksQueryHandler struct {
	repos ReadModel
	clock kernel.Clock
}

func NewListTasksQueryHandler(repos ReadModel, clock kernel.Clock) ListTasksQueryHandler {
	return ListTasksQueryHandler{repos: repos, clock: clock}
}

func (h ListTasksQueryHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, err := h.repos.UserRepository().Get(ctx, query.ActorID())
	if err != nil {
		return nil, err
	}

	tasks, err := h.repos.TaskRepository().ListByCompany(ctx, query.CompanyID(), ports.TaskFilter{
		Statuses:    query.Statuses(),
		CreatedFrom: query.CreatedFrom(),
		CreatedTo:   query.CreatedTo(),
	})
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		if policy.CanViewTask(actor, t) {
			out = append(out, taskResponse(t, now))
		}
	}
	return out, nil
}
