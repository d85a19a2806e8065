package route

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrRouteIsNotConstructed is returned by Validate on a zero-value Route.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// OnTimeBuffer is the grace period added to the estimate when judging punctuality.
const OnTimeBuffer = 30 * time.Minute

// Plan is the editable part of a route.
type Plan struct {
	StartPoint       string
	EndPoint         string
	Waypoints        []Waypoint
	Distance         decimal.Decimal
	EstimatedMinutes int
	// StartTime is the planned departure.
	StartTime *time.Time
}

func (p Plan) normalize() (Plan, error) {
	p.StartPoint = strings.TrimSpace(p.StartPoint)
	p.EndPoint = strings.TrimSpace(p.EndPoint)

	var errList []error
	if p.StartPoint == "" {
		errList = append(errList, errs.NewValueIsRequiredError("start point"))
	}
	if p.EndPoint == "" {
		errList = append(errList, errs.NewValueIsRequiredError("end point"))
	}
	if p.Distance.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("distance", p.Distance.String(), 0, "unbounded"))
	}
	if p.EstimatedMinutes < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("estimated time", p.EstimatedMinutes, 0, "unbounded"))
	}

	waypoints := make([]Waypoint, len(p.Waypoints))
	copy(waypoints, p.Waypoints)
	sort.SliceStable(waypoints, func(i, j int) bool { return waypoints[i].order < waypoints[j].order })
	for i, w := range waypoints {
		if w.order < 1 || w.location == "" {
			errList = append(errList, errs.NewValueIsInvalidError("waypoint must be created via NewWaypoint"))
			break
		}
		if i > 0 && waypoints[i-1].order == w.order {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"waypoint order",
				fmt.Errorf("order %d is used more than once", w.order),
			))
			break
		}
	}
	p.Waypoints = waypoints
	if p.StartTime != nil {
		st := *p.StartTime
		p.StartTime = &st
	}

	return p, errors.Join(errList...)
}

// Route is the aggregate root of a trip.
//
// Invariants:
//   - waypoint orders are unique and kept sorted
//   - a waypoint can only be completed after every lower-ordered one
//   - companyID never changes; the driver and the task belong to the same company
type Route struct {
	kernel.Versioned

	id              kernel.UUID
	companyID       kernel.UUID
	taskID          *kernel.UUID
	driverID        *kernel.UUID
	plan            Plan
	status          Status
	actualStartTime *time.Time
	endTime         *time.Time
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewRoute creates a Planned route for companyID.
func NewRoute(id kernel.UUID, companyID kernel.UUID, plan Plan, now time.Time) (*Route, error) {
	r := &Route{
		status:        Planned,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	var idErr, companyErr error
	if idErr = id.Validate(); idErr == nil {
		r.id = id
	}
	if err := companyID.Validate(); err != nil {
		companyErr = errs.NewValueIsRequiredErrorWithCause("company id", err)
	} else {
		r.companyID = companyID
	}
	normalized, planErr := plan.normalize()

	if err := errors.Join(idErr, companyErr, planErr); err != nil {
		return nil, err
	}
	r.plan = normalized
	return r, nil
}

// RestoreRoute rebuilds a route from persisted state.
func RestoreRoute(
	id, companyID kernel.UUID,
	taskID, driverID *kernel.UUID,
	plan Plan,
	status Status,
	actualStartTime, endTime *time.Time,
	createdAt, updatedAt time.Time,
	version int64,
) (*Route, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	r, err := NewRoute(id, companyID, plan, createdAt)
	if err != nil {
		return nil, err
	}
	if taskID != nil {
		r.taskID = kernel.Ptr(*taskID)
	}
	if driverID != nil {
		r.driverID = kernel.Ptr(*driverID)
	}
	r.status = status
	r.actualStartTime = copyTime(actualStartTime)
	r.endTime = copyTime(endTime)
	r.updatedAt = updatedAt
	r.SetVersion(version)
	return r, nil
}

func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

func (r *Route) ID() kernel.UUID             { return r.id }
func (r *Route) CompanyID() kernel.UUID      { return r.companyID }
func (r *Route) TaskID() *kernel.UUID        { return r.taskID }
func (r *Route) DriverID() *kernel.UUID      { return r.driverID }
func (r *Route) Status() Status              { return r.status }
func (r *Route) StartPoint() string          { return r.plan.StartPoint }
func (r *Route) EndPoint() string            { return r.plan.EndPoint }
func (r *Route) Distance() decimal.Decimal   { return r.plan.Distance }
func (r *Route) EstimatedMinutes() int       { return r.plan.EstimatedMinutes }
func (r *Route) StartTime() *time.Time       { return copyTime(r.plan.StartTime) }
func (r *Route) ActualStartTime() *time.Time { return copyTime(r.actualStartTime) }
func (r *Route) EndTime() *time.Time         { return copyTime(r.endTime) }
func (r *Route) CreatedAt() time.Time        { return r.createdAt }
func (r *Route) UpdatedAt() time.Time        { return r.updatedAt }

// Waypoints returns a copy of the waypoints sorted by order.
func (r *Route) Waypoints() []Waypoint {
	out := make([]Waypoint, len(r.plan.Waypoints))
	copy(out, r.plan.Waypoints)
	return out
}

// IsDriver reports whether id is the assigned driver.
func (r *Route) IsDriver(id kernel.UUID) bool {
	return kernel.EqualPtr(r.driverID, id)
}

// AssignDriver sets the driver. The driver must belong to the route's company.
func (r *Route) AssignDriver(driver *org.User, now time.Time) error {
	if r.status.IsTerminal() {
		return r.status.invalid("assign driver")
	}
	if err := task.ValidateAssignee(driver, r.companyID); err != nil {
		return err
	}
	r.driverID = kernel.Ptr(driver.ID())
	r.updatedAt = now
	return nil
}

// LinkTask attaches the route to t. A route is linked at most once and
// never to a Completed or Cancelled task.
func (r *Route) LinkTask(t *task.Task, now time.Time) error {
	if err := t.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("task", err)
	}
	if t.Status().IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("task",
			fmt.Errorf("task %s is %s", t.ID(), t.Status()))
	}
	if !t.CompanyID().IsEqual(r.companyID) {
		return errs.NewValueIsInvalidError("task must belong to the route company")
	}
	if r.taskID != nil && !r.taskID.IsEqual(t.ID()) {
		return errs.NewValueIsInvalidError("route is already linked to another task")
	}
	r.taskID = kernel.Ptr(t.ID())
	r.updatedAt = now
	return nil
}

// Replan replaces the plan. Only Planned routes can be replanned.
func (r *Route) Replan(plan Plan, now time.Time) error {
	if r.status != Planned {
		return r.status.invalid("edit")
	}
	normalized, err := plan.normalize()
	if err != nil {
		return err
	}
	r.plan = normalized
	r.updatedAt = now
	return nil
}

// Start moves the route to InProgress and records the actual start.
func (r *Route) Start(now time.Time) error {
	next, err := r.status.Start()
	if err != nil {
		return err
	}
	r.status = next
	r.actualStartTime = &now
	r.updatedAt = now
	return nil
}

// Complete moves the route to Completed, setting the end time if unset.
func (r *Route) Complete(now time.Time) error {
	next, err := r.status.Complete()
	if err != nil {
		return err
	}
	r.finish(next, now)
	return nil
}

// CompleteWithTask closes a non-terminal route because its task was completed.
// Unlike Complete it also accepts a Planned route.
func (r *Route) CompleteWithTask(now time.Time) error {
	if r.status.IsTerminal() {
		return r.status.invalid("complete")
	}
	r.finish(Completed, now)
	return nil
}

// Cancel moves a Planned or InProgress route to Cancelled.
func (r *Route) Cancel(now time.Time) error {
	next, err := r.status.Cancel()
	if err != nil {
		return err
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Route) finish(next Status, now time.Time) {
	r.status = next
	if r.endTime == nil {
		r.endTime = &now
	}
	r.updatedAt = now
}

// CompleteWaypoint marks the waypoint with the given order as done.
// The route must be InProgress and every lower-ordered waypoint must be done.
func (r *Route) CompleteWaypoint(order int, now time.Time) error {
	if r.status != InProgress {
		return r.status.invalid("complete waypoint")
	}

	idx := -1
	for i, w := range r.plan.Waypoints {
		if w.order == order {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errs.NewValueIsInvalidErrorWithCause("waypoint order", fmt.Errorf("route has no waypoint %d", order))
	}

	if r.plan.Waypoints[idx].completed {
		return errs.NewInvalidTransitionError("waypoint", "Completed", "complete")
	}
	for _, w := range r.plan.Waypoints[:idx] {
		if !w.completed {
			return errs.NewInvalidTransitionErrorWithCause(
				"waypoint", "Pending", "complete",
				fmt.Errorf("waypoint %d must be completed before waypoint %d", w.order, order),
			)
		}
	}

	completedAt := now
	r.plan.Waypoints[idx].completed = true
	r.plan.Waypoints[idx].completionTime = &completedAt
	r.updatedAt = now
	return nil
}

// ActiveWaypoint is the lowest-ordered waypoint not yet completed.
func (r *Route) ActiveWaypoint() (Waypoint, bool) {
	for _, w := range r.plan.Waypoints {
		if !w.completed {
			return w, true
		}
	}
	return Waypoint{}, false
}

// Progress counts completed waypoints.
func (r *Route) Progress() Progress {
	p := Progress{Total: len(r.plan.Waypoints)}
	for _, w := range r.plan.Waypoints {
		if w.completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) * 100 / float64(p.Total)
	}
	return p
}

// OnTime reports whether the route ended within StartTime + estimate + OnTimeBuffer.
// counted is false when the planned start or the end time is missing; such
// routes take no part in on-time statistics.
func (r *Route) OnTime() (onTime, counted bool) {
	if r.plan.StartTime == nil || r.endTime == nil {
		return false, false
	}
	deadline := r.plan.StartTime.
		Add(time.Duration(r.plan.EstimatedMinutes) * time.Minute).
		Add(OnTimeBuffer)
	return !r.endTime.After(deadline), true
}

// CompletionMinutes is the actual duration of the trip. ok is false unless
// both the actual start and the end time are known.
func (r *Route) CompletionMinutes() (minutes float64, ok bool) {
	if r.actualStartTime == nil || r.endTime == nil {
		return 0, false
	}
	return r.endTime.Sub(*r.actualStartTime).Minutes(), true
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
