package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/core/domain/policy"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetCompanyReportQueryHandler computes reports on demand and keeps them in
// the report cache. Cache failures degrade to recomputation.
type GetCompanyReportQueryHandler struct {
	repos      ReadModel
	cache      ports.ReportCache
	clock      kernel.Clock
	aggregator services.StatisticsAggregator
}

// NewGetCompanyReportQueryHandler accepts a nil cache.
func NewGetCompanyReportQueryHandler(repos ReadModel, cache ports.ReportCache, clock kernel.Clock) GetCompanyReportQueryHandler {
	return GetCompanyReportQueryHandler{
		repos:      repos,
		cache:      cache,
		clock:      clock,
		aggregator: services.NewStatisticsAggregator(),
	}
}

func (h GetCompanyReportQueryHandler) Handle(ctx context.Context, query GetCompanyReportQuery) (statistics.Report, error) {
	if err := query.Validate(); err != nil {
		return statistics.Report{}, err
	}

	actor, err := h.repos.UserRepository().Get(ctx, query.ActorID())
	if err != nil {
		return statistics.Report{}, err
	}
	if err = policy.Require(policy.CanViewReport(actor, query.CompanyID()), actor, policy.ActionView,
		"company "+query.CompanyID().String()); err != nil {
		return statistics.Report{}, err
	}

	if h.cache != nil {
		if cached, found, cacheErr := h.cache.Get(ctx, query.CompanyID(), query.Period()); cacheErr == nil && found {
			return cached, nil
		}
	}

	members, err := h.repos.UserRepository().ListByCompany(ctx, query.CompanyID())
	if err != nil {
		return statistics.Report{}, err
	}
	tasks, err := h.repos.TaskRepository().ListByCompany(ctx, query.CompanyID(), ports.TaskFilter{})
	if err != nil {
		return statistics.Report{}, err
	}
	routes, err := h.repos.RouteRepository().ListByCompany(ctx, query.CompanyID(), ports.RouteFilter{})
	if err != nil {
		return statistics.Report{}, err
	}

	report := h.aggregator.Report(query.CompanyID(), org.NewHierarchy(members), tasks, routes,
		query.Period(), h.clock.Now())

	if h.cache != nil {
		_ = h.cache.Set(ctx, report)
	}
	return report, nil
}
