package documentrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entity = "document"

// GormDocumentRepository implements ports.DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker dbutil.AggregateTracker
}

func NewGormDocumentRepository(db *gorm.DB, tracker dbutil.AggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert document %s", aggregate.ID())
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDocumentRepository) Update(ctx context.Context, aggregate *document.Document) error {
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

func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbutil.NotFound(err, entity, id)
	}
	return toDomain(dto)
}

func (r *GormDocumentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.deleteWhere(ctx, "id = ?", id)
}

func (r *GormDocumentRepository) DeleteByTask(ctx context.Context, taskID kernel.UUID) error {
	return r.deleteWhere(ctx, "task_id = ?", taskID)
}

func (r *GormDocumentRepository) DeleteByRoute(ctx context.Context, routeID kernel.UUID) error {
	return r.deleteWhere(ctx, "route_id = ?", routeID)
}

func (r *GormDocumentRepository) DeleteByCompany(ctx context.Context, companyID kernel.UUID) error {
	return r.deleteWhere(ctx, "company_id = ?", companyID)
}

// ListByTask returns the task's documents oldest first.
func (r *GormDocumentRepository) ListByTask(ctx context.Context, taskID kernel.UUID) ([]*document.Document, error) {
	var dtos []DocumentDTO
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, errors.Wrapf(err, "list documents of task %s", taskID)
	}

	docs := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (r *GormDocumentRepository) deleteWhere(ctx context.Context, cond string, id kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&DocumentDTO{}, cond, id.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete documents where %s %s", cond, id)
	}
	return nil
}
