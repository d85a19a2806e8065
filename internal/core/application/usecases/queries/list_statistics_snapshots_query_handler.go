package queries

import (
	"context"
	"sort"

	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/core/domain/policy"
)

type ListStatisticsSnapshotsQueryHandler struct {
	repos ReadModel
}

func NewListStatisticsSnapshotsQueryHandler(repos ReadModel) ListStatisticsSnapshotsQueryHandler {
	return ListStatisticsSnapshotsQueryHandler{repos: repos}
}

// Handle returns reports newest period first.
func (h ListStatisticsSnapshotsQueryHandler) Handle(
	ctx context.Context,
	query ListStatisticsSnapshotsQuery,
) ([]statistics.Report, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, err := h.repos.UserRepository().Get(ctx, query.ActorID())
	if err != nil {
		return nil, err
	}
	if err = policy.Require(policy.CanViewReport(actor, query.CompanyID()), actor, policy.ActionView,
		"company "+query.CompanyID().String()); err != nil {
		return nil, err
	}

	snapshots, err := h.repos.StatisticsRepository().ListByCompany(ctx, query.CompanyID())
	if err != nil {
		return nil, err
	}

	reports := make([]statistics.Report, 0, len(snapshots))
	for _, s := range snapshots {
		reports = append(reports, s.Report())
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Period.Start.After(reports[j].Period.Start)
	})
	return reports, nil
}
