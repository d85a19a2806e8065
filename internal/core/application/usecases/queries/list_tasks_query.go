package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/guard"
)

var ErrListTasksQueryIsNotConstructed = errors.New(
	"ListTasksQuery must be created via NewListTasksQuery constructor",
)

// ListTasksQuery lists the tasks of a company that the actor can see,
// optionally narrowed by status and creation time.
type ListTasksQuery struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	companyID   kernel.UUID
	statuses    []task.Status
	createdFrom *time.Time
	createdTo   *time.Time

	guard guard.ConstructorGuard
}

func NewListTasksQuery(
	actorID, companyID kernel.UUID,
	statuses []task.Status,
	createdFrom, createdTo *time.Time,
) (ListTasksQuery, error) {
	errList := []error{validateID("actor id", actorID), validateID("company id", companyID)}
	for _, s := range statuses {
		errList = append(errList, s.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListTasksQuery{}, err
	}

	return ListTasksQuery{
		actorID:     actorID,
		companyID:   companyID,
		statuses:    statuses,
		createdFrom: createdFrom,
		createdTo:   createdTo,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListTasksQuery) Validate() error {
	return q.guard.Validate(ErrListTasksQueryIsNotConstructed)
}

func (q ListTasksQuery) ActorID() kernel.UUID    { return q.actorID }
func (q ListTasksQuery) CompanyID() kernel.UUID  { return q.companyID }
func (q ListTasksQuery) Statuses() []task.Status { return q.statuses }
func (q ListTasksQuery) CreatedFrom() *time.Time { return q.createdFrom }
func (q ListTasksQuery) CreatedTo() *time.Time   { return q.createdTo }
