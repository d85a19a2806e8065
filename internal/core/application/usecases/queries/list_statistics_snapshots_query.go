package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrListStatisticsSnapshotsQueryIsNotConstructed = errors.New(
	"ListStatisticsSnapshotsQuery must be created via NewListStatisticsSnapshotsQuery constructor",
)

// ListStatisticsSnapshotsQuery returns the stored daily reports of a company.
type ListStatisticsSnapshotsQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListStatisticsSnapshotsQuery(actorID, companyID kernel.UUID) (ListStatisticsSnapshotsQuery, error) {
	if err := errors.Join(validateID("actor id", actorID), validateID("company id", companyID)); err != nil {
		return ListStatisticsSnapshotsQuery{}, err
	}
	return ListStatisticsSnapshotsQuery{actorID: actorID, companyID: companyID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStatisticsSnapshotsQuery) Validate() error {
	return q.guard.Validate(ErrListStatisticsSnapshotsQueryIsNotConstructed)
}

func (q ListStatisticsSnapshotsQuery) ActorID() kernel.UUID   { return q.actorID }
func (q ListStatisticsSnapshotsQuery) CompanyID() kernel.UUID { return q.companyID }
