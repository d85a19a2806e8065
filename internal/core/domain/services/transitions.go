package services

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"
)

func taskTransition(t *task.Task, actor *org.User, from task.Status, at time.Time, cascade bool) kernel.Transition {
	return kernel.Transition{
		Entity:    kernel.EntityTask,
		ID:        t.ID(),
		CompanyID: t.CompanyID(),
		ActorID:   actor.ID(),
		From:      from.String(),
		To:        t.Status().String(),
		At:        at,
		Cascade:   cascade,
	}
}

func routeTransition(r *route.Route, actor *org.User, from route.Status, at time.Time, cascade bool) kernel.Transition {
	return kernel.Transition{
		Entity:    kernel.EntityRoute,
		ID:        r.ID(),
		CompanyID: r.CompanyID(),
		ActorID:   actor.ID(),
		From:      from.String(),
		To:        r.Status().String(),
		At:        at,
		Cascade:   cascade,
	}
}

// ensureLinked checks that r, when given, is the route of t.
func ensureLinked(t *task.Task, r *route.Route) error {
	if t == nil || r == nil {
		return nil
	}
	if !kernel.EqualPtr(r.TaskID(), t.ID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"linked route",
			fmt.Errorf("route %s is not linked to task %s", r.ID(), t.ID()),
		)
	}
	return nil
}

func describe(entity string, id kernel.UUID) string {
	return entity + " " + id.String()
}
