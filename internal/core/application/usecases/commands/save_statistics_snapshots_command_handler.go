package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// SaveStatisticsSnapshotsCommandHandler stores one snapshot per company in a
// single transaction. Running it again for the same period replaces the
// earlier snapshots.
type SaveStatisticsSnapshotsCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	aggregator services.StatisticsAggregator
}

func NewSaveStatisticsSnapshotsCommandHandler(uowFactory UoWFactory, clock kernel.Clock) SaveStatisticsSnapshotsCommandHandler {
	return SaveStatisticsSnapshotsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		aggregator: services.NewStatisticsAggregator(),
	}
}

// Handle returns the number of snapshots written.
func (h SaveStatisticsSnapshotsCommandHandler) Handle(ctx context.Context, cmd SaveStatisticsSnapshotsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	companies, err := uow.CompanyRepository().List(ctx)
	if err != nil {
		return 0, err
	}

	calculatedAt := h.clock.Now()
	for _, c := range companies {
		report, buildErr := h.report(ctx, uow, c.ID(), cmd.Period(), calculatedAt)
		if buildErr != nil {
			return 0, buildErr
		}
		snapshot, snapErr := statistics.NewSnapshot(kernel.NewUUID(), report)
		if snapErr != nil {
			return 0, snapErr
		}
		if err = uow.StatisticsRepository().Add(ctx, snapshot); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(companies), nil
}

func (h SaveStatisticsSnapshotsCommandHandler) report(
	ctx context.Context,
	uow UoW,
	companyID kernel.UUID,
	period statistics.Period,
	calculatedAt time.Time,
) (statistics.Report, error) {
	members, err := uow.UserRepository().ListByCompany(ctx, companyID)
	if err != nil {
		return statistics.Report{}, err
	}
	tasks, err := uow.TaskRepository().ListByCompany(ctx, companyID, ports.TaskFilter{})
	if err != nil {
		return statistics.Report{}, err
	}
	routes, err := uow.RouteRepository().ListByCompany(ctx, companyID, ports.RouteFilter{})
	if err != nil {
		return statistics.Report{}, err
	}

	return h.aggregator.Report(companyID, org.NewHierarchy(members), tasks, routes, period, calculatedAt), nil
}
