package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetTaskQueryIsNotConstructed = errors.New(
	"GetTaskQuery must be created via NewGetTaskQuery constructor",
)

// GetTaskQuery reads one task the actor is allowed to see.
type GetTaskQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	taskID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTaskQuery(actorID, taskID kernel.UUID) (GetTaskQuery, error) {
	if err := errors.Join(validateID("actor id", actorID), validateID("task id", taskID)); err != nil {
		return GetTaskQuery{}, err
	}
	return GetTaskQuery{actorID: actorID, taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskQueryIsNotConstructed)
}

func (q GetTaskQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetTaskQuery) TaskID() kernel.UUID  { return q.taskID }

// TaskResponse is the read view of a task. RouteID is set when a route is linked.
type TaskResponse struct {
	ID          kernel.UUID
	Title       string
	Description string
	Status      string
	CompanyID   kernel.UUID
	CreatorID   kernel.UUID
	AssigneeID  *kernel.UUID
	RouteID     *kernel.UUID
	Deadline    *time.Time
	Overdue     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
