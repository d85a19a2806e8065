// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the transition notifier and the report cache.
package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
)

// TaskFilter narrows task listings. Zero fields do not filter.
type TaskFilter struct {
	Statuses    []task.Status
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// TaskRepository persists Task aggregates.
type TaskRepository interface {
	// Add stores a new task and sets its version to 1.
	Add(ctx context.Context, t *task.Task) error

	// Update stores changes if the stored version equals t.Version().
	// Returns errs.ErrConflict on a version mismatch and errs.ErrObjectNotFound
	// when the task no longer exists. On success the version is incremented.
	Update(ctx context.Context, t *task.Task) error

	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	Delete(ctx context.Context, id kernel.UUID) error

	ListByCompany(ctx context.Context, companyID kernel.UUID, filter TaskFilter) ([]*task.Task, error)
	ListByCreator(ctx context.Context, creatorID kernel.UUID, filter TaskFilter) ([]*task.Task, error)
	ListByAssignee(ctx context.Context, assigneeID kernel.UUID, filter TaskFilter) ([]*task.Task, error)
}
