package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteFilter narrows route listings. Zero fields do not filter.
type RouteFilter struct {
	Statuses  []route.Status
	StartFrom *time.Time
	StartTo   *time.Time
}

// RouteRepository persists Route aggregates, waypoints included.
type RouteRepository interface {
	// Add stores a new route. A second route for the same task is rejected
	// with errs.ErrValueIsInvalid.
	Add(ctx context.Context, r *route.Route) error

	// Update has the same optimistic-version contract as TaskRepository.Update.
	Update(ctx context.Context, r *route.Route) error

	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetByTask returns the route linked to taskID or errs.ErrObjectNotFound.
	GetByTask(ctx context.Context, taskID kernel.UUID) (*route.Route, error)

	Delete(ctx context.Context, id kernel.UUID) error
	DeleteByCompany(ctx context.Context, companyID kernel.UUID) error

	ListByDriver(ctx context.Context, driverID kernel.UUID, filter RouteFilter) ([]*route.Route, error)
	ListByCompany(ctx context.Context, companyID kernel.UUID, filter RouteFilter) ([]*route.Route, error)
}
