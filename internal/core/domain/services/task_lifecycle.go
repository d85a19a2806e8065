package services

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/policy"
)

// TaskLifecycle drives Task state changes on behalf of an actor.
//
// Cascades into the linked route:
//   - Start: a Planned route moves to InProgress with its actual start time set.
//   - Complete: a non-terminal route is completed, end time set if unset.
//   - Cancel: a non-terminal route is cancelled.
type TaskLifecycle struct {
	clock kernel.Clock
}

func NewTaskLifecycle(clock kernel.Clock) TaskLifecycle {
	return TaskLifecycle{clock: clock}
}

// Create builds a New task in companyID. assignee and deadline are optional;
// an assignee must be a driver of the same company.
func (l TaskLifecycle) Create(
	actor *org.User,
	companyID kernel.UUID,
	title, description string,
	assignee *org.User,
	deadline *time.Time,
) (*task.Task, error) {
	if err := policy.Require(policy.CanCreate(actor, companyID), actor, policy.ActionCreate, describe("company", companyID)); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	t, err := task.NewTask(kernel.NewUUID(), title, description, companyID, actor.ID(), deadline, now)
	if err != nil {
		return nil, err
	}
	if assignee != nil {
		if err = t.Assign(assignee, now); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Update edits title, description and deadline.
func (l TaskLifecycle) Update(actor *org.User, t *task.Task, title, description string, deadline *time.Time) error {
	if err := l.require(policy.CanEditTask(actor, t), actor, policy.ActionEdit, t); err != nil {
		return err
	}
	return t.Update(title, description, deadline, l.clock.Now())
}

// Assign sets the driver of a non-terminal task without changing its status.
func (l TaskLifecycle) Assign(actor *org.User, t *task.Task, driver *org.User) error {
	if err := l.require(policy.CanEditTask(actor, t), actor, policy.ActionEdit, t); err != nil {
		return err
	}
	return t.Assign(driver, l.clock.Now())
}

// Start moves New to InProgress. Allowed to the assignee and to editors.
func (l TaskLifecycle) Start(actor *org.User, t *task.Task, linked *route.Route) ([]kernel.Transition, error) {
	if err := l.require(policy.CanStartTask(actor, t), actor, policy.ActionDrive, t); err != nil {
		return nil, err
	}
	if err := ensureLinked(t, linked); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	from := t.Status()
	if err := t.Start(now); err != nil {
		return nil, err
	}
	out := []kernel.Transition{taskTransition(t, actor, from, now, false)}

	if linked != nil && linked.Status() == route.Planned {
		routeFrom := linked.Status()
		if err := linked.Start(now); err != nil {
			return nil, err
		}
		out = append(out, routeTransition(linked, actor, routeFrom, now, true))
	}
	return out, nil
}

// Hold parks a New or InProgress task.
func (l TaskLifecycle) Hold(actor *org.User, t *task.Task) ([]kernel.Transition, error) {
	return l.simple(actor, t, (*task.Task).Hold)
}

// Resume returns an OnHold task to InProgress.
func (l TaskLifecycle) Resume(actor *org.User, t *task.Task) ([]kernel.Transition, error) {
	return l.simple(actor, t, (*task.Task).Resume)
}

// Complete is legal from every non-terminal status.
func (l TaskLifecycle) Complete(actor *org.User, t *task.Task, linked *route.Route) ([]kernel.Transition, error) {
	if err := l.require(policy.CanCompleteTask(actor, t), actor, policy.ActionComplete, t); err != nil {
		return nil, err
	}
	if err := ensureLinked(t, linked); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	from := t.Status()
	if err := t.Complete(now); err != nil {
		return nil, err
	}
	out := []kernel.Transition{taskTransition(t, actor, from, now, false)}

	if linked != nil && !linked.Status().IsTerminal() {
		routeFrom := linked.Status()
		if err := linked.CompleteWithTask(now); err != nil {
			return nil, err
		}
		out = append(out, routeTransition(linked, actor, routeFrom, now, true))
	}
	return out, nil
}

// Cancel is legal from every non-terminal status.
func (l TaskLifecycle) Cancel(actor *org.User, t *task.Task, linked *route.Route) ([]kernel.Transition, error) {
	if err := l.require(policy.CanEditTask(actor, t), actor, policy.ActionCancel, t); err != nil {
		return nil, err
	}
	if err := ensureLinked(t, linked); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	from := t.Status()
	if err := t.Cancel(now); err != nil {
		return nil, err
	}
	out := []kernel.Transition{taskTransition(t, actor, from, now, false)}

	if linked != nil && !linked.Status().IsTerminal() {
		routeFrom := linked.Status()
		if err := linked.Cancel(now); err != nil {
			return nil, err
		}
		out = append(out, routeTransition(linked, actor, routeFrom, now, true))
	}
	return out, nil
}

func (l TaskLifecycle) simple(
	actor *org.User,
	t *task.Task,
	apply func(*task.Task, time.Time) error,
) ([]kernel.Transition, error) {
	if err := l.require(policy.CanEditTask(actor, t), actor, policy.ActionEdit, t); err != nil {
		return nil, err
	}
	now := l.clock.Now()
	from := t.Status()
	if err := apply(t, now); err != nil {
		return nil, err
	}
	return []kernel.Transition{taskTransition(t, actor, from, now, false)}, nil
}

func (l TaskLifecycle) require(allowed bool, actor *org.User, action policy.Action, t *task.Task) error {
	return policy.Require(allowed, actor, action, describe(kernel.EntityTask, t.ID()))
}
