package taskrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entity = "task"

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker dbutil.AggregateTracker
}

func NewGormTaskRepository(db *gorm.DB, tracker dbutil.AggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new task at version 1.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert task %s", aggregate.ID())
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the task if nobody changed it since it was loaded.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	if err := dbutil.UpdateVersioned(ctx, r.db, &dto, entity, aggregate.ID(), aggregate.Version()); err != nil {
		return err
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbutil.NotFound(err, entity, id)
	}

	return toDomain(dto)
}

func (r *GormTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&TaskDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete task %s", id)
	}
	return nil
}

func (r *GormTaskRepository) ListByCompany(ctx context.Context, companyID kernel.UUID, filter ports.TaskFilter) ([]*task.Task, error) {
	return r.list(ctx, "company_id = ?", companyID, filter)
}

func (r *GormTaskRepository) ListByCreator(ctx context.Context, creatorID kernel.UUID, filter ports.TaskFilter) ([]*task.Task, error) {
	return r.list(ctx, "creator_id = ?", creatorID, filter)
}

func (r *GormTaskRepository) ListByAssignee(ctx context.Context, assigneeID kernel.UUID, filter ports.TaskFilter) ([]*task.Task, error) {
	return r.list(ctx, "assignee_id = ?", assigneeID, filter)
}

// list returns matching tasks newest first.
func (r *GormTaskRepository) list(ctx context.Context, cond string, id kernel.UUID, filter ports.TaskFilter) ([]*task.Task, error) {
	q := r.db.WithContext(ctx).Where(cond, id.Bytes())
	if len(filter.Statuses) > 0 {
		names := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			names = append(names, s.String())
		}
		q = q.Where("status IN ?", names)
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		q = q.Where("created_at < ?", *filter.CreatedTo)
	}

	var dtos []TaskDTO
	if err := q.Order("created_at DESC").Order("id").Find(&dtos).Error; err != nil {
		return nil, errors.Wrap(err, "list tasks")
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
