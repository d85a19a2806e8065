package routerepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entity = "route"

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker dbutil.AggregateTracker
}

func NewGormRouteRepository(db *gorm.DB, tracker dbutil.AggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a route at version 1. A task can have at most one route.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.TaskID != nil {
		var count int64
		if err := r.db.WithContext(ctx).Model(&RouteDTO{}).Where("task_id = ?", *dto.TaskID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "check task route")
		}
		if count > 0 {
			return errs.NewValueIsInvalidErrorWithCause("task id",
				errors.Errorf("task %s already has a route", aggregate.TaskID()))
		}
	}

	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert route %s", aggregate.ID())
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
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

func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbutil.NotFound(err, entity, id)
	}
	return toDomain(dto)
}

// GetByTask returns the route linked to taskID.
func (r *GormRouteRepository) GetByTask(ctx context.Context, taskID kernel.UUID) (*route.Route, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "task_id = ?", taskID.Bytes()).Error; err != nil {
		return nil, dbutil.NotFound(err, "route of task", taskID)
	}
	return toDomain(dto)
}

func (r *GormRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&RouteDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete route %s", id)
	}
	return nil
}

func (r *GormRouteRepository) DeleteByCompany(ctx context.Context, companyID kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&RouteDTO{}, "company_id = ?", companyID.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete routes of company %s", companyID)
	}
	return nil
}

func (r *GormRouteRepository) ListByDriver(ctx context.Context, driverID kernel.UUID, filter ports.RouteFilter) ([]*route.Route, error) {
	return r.list(ctx, "driver_id = ?", driverID, filter)
}

func (r *GormRouteRepository) ListByCompany(ctx context.Context, companyID kernel.UUID, filter ports.RouteFilter) ([]*route.Route, error) {
	return r.list(ctx, "company_id = ?", companyID, filter)
}

// list orders by planned start, unplanned routes last.
func (r *GormRouteRepository) list(ctx context.Context, cond string, id kernel.UUID, filter ports.RouteFilter) ([]*route.Route, error) {
	q := r.db.WithContext(ctx).Where(cond, id.Bytes())
	if len(filter.Statuses) > 0 {
		names := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			names = append(names, s.String())
		}
		q = q.Where("status IN ?", names)
	}
	if filter.StartFrom != nil {
		q = q.Where("start_time >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		q = q.Where("start_time < ?", *filter.StartTo)
	}

	var dtos []RouteDTO
	if err := q.Order("start_time ASC NULLS LAST").Order("created_at").Find(&dtos).Error; err != nil {
		return nil, errors.Wrap(err, "list routes")
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, nil
}
