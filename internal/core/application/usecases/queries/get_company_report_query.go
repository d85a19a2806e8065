package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetCompanyReportQueryIsNotConstructed = errors.New(
	"GetCompanyReportQuery must be created via NewGetCompanyReportQuery constructor",
)

// GetCompanyReportQuery asks for the company, driver and supervisor
// statistics of one company over a period.
//
// Example:
//
//	query, err := NewGetCompanyReportQuery(actorID, companyID, statistics.LastDays(now, 30))
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
type GetCompanyReportQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	companyID kernel.UUID
	period    statistics.Period

	guard guard.ConstructorGuard
}

func NewGetCompanyReportQuery(actorID, companyID kernel.UUID, period statistics.Period) (GetCompanyReportQuery, error) {
	var periodErr error
	if !period.End.After(period.Start) {
		periodErr = errs.NewValueIsInvalidError("report period")
	}
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("company id", companyID),
		periodErr,
	); err != nil {
		return GetCompanyReportQuery{}, err
	}

	return GetCompanyReportQuery{
		actorID:   actorID,
		companyID: companyID,
		period:    statistics.Period{Start: period.Start.UTC(), End: period.End.UTC()},
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCompanyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyReportQueryIsNotConstructed)
}

func (q GetCompanyReportQuery) ActorID() kernel.UUID      { return q.actorID }
func (q GetCompanyReportQuery) CompanyID() kernel.UUID    { return q.companyID }
func (q GetCompanyReportQuery) Period() statistics.Period { return q.period }
