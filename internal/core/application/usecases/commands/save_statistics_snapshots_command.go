package commands

import (
	"errors"

	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrSaveStatisticsSnapshotsCommandIsNotConstructed = errors.New(
	"SaveStatisticsSnapshotsCommand must be created via NewSaveStatisticsSnapshotsCommand constructor",
)

// SaveStatisticsSnapshotsCommand computes the report of every company for
// one period and appends it as a snapshot. Issued by the scheduler, not by users.
type SaveStatisticsSnapshotsCommand struct { //nolint:recvcheck //using for validation
	period statistics.Period

	guard guard.ConstructorGuard
}

func NewSaveStatisticsSnapshotsCommand(period statistics.Period) (SaveStatisticsSnapshotsCommand, error) {
	if !period.End.After(period.Start) {
		return SaveStatisticsSnapshotsCommand{}, errs.NewValueIsInvalidError("statistics period")
	}
	return SaveStatisticsSnapshotsCommand{period: period, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveStatisticsSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrSaveStatisticsSnapshotsCommandIsNotConstructed)
}

func (c SaveStatisticsSnapshotsCommand) Period() statistics.Period { return c.period }
