package services

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/policy"
)

// RouteLifecycle drives Route state changes on behalf of an actor.
//
// Cascades into the linked task:
//   - Start: a New task starts, an OnHold task resumes.
//   - Complete: a non-terminal task is completed.
//   - Cancel of an InProgress route: a non-terminal task goes back to New.
//     Cancelling a Planned route leaves the task alone.
type RouteLifecycle struct {
	clock kernel.Clock
}

func NewRouteLifecycle(clock kernel.Clock) RouteLifecycle {
	return RouteLifecycle{clock: clock}
}

// Create builds a Planned route. linked and driver are optional. Creating a
// route never changes the task status.
func (l RouteLifecycle) Create(
	actor *org.User,
	companyID kernel.UUID,
	plan route.Plan,
	linked *task.Task,
	driver *org.User,
) (*route.Route, error) {
	if err := policy.Require(policy.CanCreate(actor, companyID), actor, policy.ActionCreate, describe("company", companyID)); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	r, err := route.NewRoute(kernel.NewUUID(), companyID, plan, now)
	if err != nil {
		return nil, err
	}
	if driver != nil {
		if err = r.AssignDriver(driver, now); err != nil {
			return nil, err
		}
	}
	if linked != nil {
		if err = r.LinkTask(linked, now); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Replan replaces the plan of a Planned route.
func (l RouteLifecycle) Replan(actor *org.User, r *route.Route, plan route.Plan) error {
	if err := l.require(policy.CanEditRoute(actor, r), actor, policy.ActionEdit, r); err != nil {
		return err
	}
	return r.Replan(plan, l.clock.Now())
}

// AssignDriver changes the driver. Drivers cannot reassign routes.
func (l RouteLifecycle) AssignDriver(actor *org.User, r *route.Route, driver *org.User) error {
	if err := l.require(policy.CanReassignRoute(actor, r), actor, policy.ActionEdit, r); err != nil {
		return err
	}
	return r.AssignDriver(driver, l.clock.Now())
}

// Start moves Planned to InProgress. Only the assigned driver may start.
func (l RouteLifecycle) Start(actor *org.User, r *route.Route, linked *task.Task) ([]kernel.Transition, error) {
	if err := l.require(policy.CanDriveRoute(actor, r), actor, policy.ActionDrive, r); err != nil {
		return nil, err
	}
	if err := ensureLinked(linked, r); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	from := r.Status()
	if err := r.Start(now); err != nil {
		return nil, err
	}
	out := []kernel.Transition{routeTransition(r, actor, from, now, false)}

	if linked != nil {
		taskFrom := linked.Status()
		var err error
		switch taskFrom {
		case task.New:
			err = linked.Start(now)
		case task.OnHold:
			err = linked.Resume(now)
		default:
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, taskTransition(linked, actor, taskFrom, now, true))
	}
	return out, nil
}

// Complete moves InProgress to Completed. Only the assigned driver may complete.
func (l RouteLifecycle) Complete(actor *org.User, r *route.Route, linked *task.Task) ([]kernel.Transition, error) {
	if err := l.require(policy.CanDriveRoute(actor, r), actor, policy.ActionComplete, r); err != nil {
		return nil, err
	}
	if err := ensureLinked(linked, r); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	from := r.Status()
	if err := r.Complete(now); err != nil {
		return nil, err
	}
	out := []kernel.Transition{routeTransition(r, actor, from, now, false)}

	if linked != nil && !linked.Status().IsTerminal() {
		taskFrom := linked.Status()
		if err := linked.Complete(now); err != nil {
			return nil, err
		}
		out = append(out, taskTransition(linked, actor, taskFrom, now, true))
	}
	return out, nil
}

// Cancel moves Planned or InProgress to Cancelled.
func (l RouteLifecycle) Cancel(actor *org.User, r *route.Route, linked *task.Task) ([]kernel.Transition, error) {
	if err := l.require(policy.CanCancelRoute(actor, r), actor, policy.ActionCancel, r); err != nil {
		return nil, err
	}
	if err := ensureLinked(linked, r); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	from := r.Status()
	if err := r.Cancel(now); err != nil {
		return nil, err
	}
	out := []kernel.Transition{routeTransition(r, actor, from, now, false)}

	if from == route.InProgress && linked != nil && !linked.Status().IsTerminal() && linked.Status() != task.New {
		taskFrom := linked.Status()
		if err := linked.Reset(now); err != nil {
			return nil, err
		}
		out = append(out, taskTransition(linked, actor, taskFrom, now, true))
	}
	return out, nil
}

// CompleteWaypoint marks one waypoint done. Only the assigned driver may do it.
func (l RouteLifecycle) CompleteWaypoint(actor *org.User, r *route.Route, order int) error {
	if err := l.require(policy.CanDriveRoute(actor, r), actor, policy.ActionDrive, r); err != nil {
		return err
	}
	return r.CompleteWaypoint(order, l.clock.Now())
}

func (l RouteLifecycle) require(allowed bool, actor *org.User, action policy.Action, r *route.Route) error {
	return policy.Require(allowed, actor, action, describe(kernel.EntityRoute, r.ID()))
}
