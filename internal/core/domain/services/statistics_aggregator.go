package services

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/core/domain/model/task"

	"github.com/shopspring/decimal"
)

// StatisticsAggregator computes reports from entity snapshots. It holds no
// state; equal inputs give equal outputs.
//
// Tasks fall into a period by creation time. Routes fall into a period by
// planned start time, or by creation time when no start is planned.
type StatisticsAggregator struct{}

func NewStatisticsAggregator() StatisticsAggregator {
	return StatisticsAggregator{}
}

// Report assembles company, driver and supervisor statistics for companyID.
// Drivers and supervisors are taken from the hierarchy in roster order.
func (a StatisticsAggregator) Report(
	companyID kernel.UUID,
	h *org.Hierarchy,
	tasks []*task.Task,
	routes []*route.Route,
	period statistics.Period,
	calculatedAt time.Time,
) statistics.Report {
	report := statistics.Report{
		Period:       period,
		Company:      a.CompanyStats(companyID, h, tasks, period),
		Drivers:      make([]statistics.DriverStats, 0),
		Supervisors:  make([]statistics.SupervisorStats, 0),
		CalculatedAt: calculatedAt,
	}

	for _, u := range h.Users() {
		if !u.BelongsTo(companyID) {
			continue
		}
		switch u.Role() {
		case org.Driver:
			report.Drivers = append(report.Drivers, a.DriverStats(u.ID(), routes, period))
		case org.Manager, org.Operator:
			report.Supervisors = append(report.Supervisors, a.SupervisorStats(u, h, tasks, period))
		}
	}
	return report
}

// CompanyStats counts staff by role and tasks by status.
func (a StatisticsAggregator) CompanyStats(
	companyID kernel.UUID,
	h *org.Hierarchy,
	tasks []*task.Task,
	period statistics.Period,
) statistics.CompanyStats {
	roles := h.CountByRole(companyID)

	var scoped []*task.Task
	for _, t := range tasks {
		if t.CompanyID().IsEqual(companyID) {
			scoped = append(scoped, t)
		}
	}
	counts := a.TaskCounts(scoped, period)

	return statistics.CompanyStats{
		CompanyID:      companyID,
		Managers:       roles[org.Manager],
		Operators:      roles[org.Operator],
		Drivers:        roles[org.Driver],
		Tasks:          counts,
		CompletionRate: statistics.Rate(counts.Completed, counts.Total),
	}
}

// TaskCounts tallies tasks created within period by status.
func (a StatisticsAggregator) TaskCounts(tasks []*task.Task, period statistics.Period) statistics.TaskCounts {
	var c statistics.TaskCounts
	for _, t := range tasks {
		if !period.Contains(t.CreatedAt()) {
			continue
		}
		c.Total++
		switch t.Status() {
		case task.New:
			c.New++
		case task.InProgress:
			c.InProgress++
		case task.OnHold:
			c.OnHold++
		case task.Completed:
			c.Completed++
		case task.Cancelled:
			c.Cancelled++
		}
	}
	return c
}

// DriverStats summarizes the routes of one driver.
//
// Distance sums Completed routes only. The average completion time uses
// routes with both an actual start and an end. The on-time rate uses routes
// with both a planned start and an end.
func (a StatisticsAggregator) DriverStats(
	driverID kernel.UUID,
	routes []*route.Route,
	period statistics.Period,
) statistics.DriverStats {
	s := statistics.DriverStats{DriverID: driverID, TotalDistance: decimal.Zero}

	var minutes float64
	var timed int
	for _, r := range routes {
		if !r.IsDriver(driverID) || !period.Contains(routeAnchor(r)) {
			continue
		}
		s.TotalRoutes++
		if r.Status() == route.Completed {
			s.CompletedRoutes++
			s.TotalDistance = s.TotalDistance.Add(r.Distance())
		}
		if m, ok := r.CompletionMinutes(); ok {
			minutes += m
			timed++
		}
		if onTime, counted := r.OnTime(); counted {
			s.OnTimeCounted++
			if onTime {
				s.OnTimeRoutes++
			}
		}
	}

	if timed > 0 {
		s.AverageCompletionMinutes = minutes / float64(timed)
	}
	s.OnTimeRate = statistics.Rate(s.OnTimeRoutes, s.OnTimeCounted)
	return s
}

// SupervisorStats counts the tasks assigned to drivers anywhere below supervisor.
func (a StatisticsAggregator) SupervisorStats(
	supervisor *org.User,
	h *org.Hierarchy,
	tasks []*task.Task,
	period statistics.Period,
) statistics.SupervisorStats {
	subs := h.Subordinates(supervisor)
	drivers := make(map[kernel.UUID]struct{})
	for _, d := range h.SubordinateDrivers(supervisor) {
		drivers[d.ID()] = struct{}{}
	}

	var scoped []*task.Task
	for _, t := range tasks {
		if assignee := t.Assignee(); assignee != nil {
			if _, ok := drivers[*assignee]; ok {
				scoped = append(scoped, t)
			}
		}
	}
	counts := a.TaskCounts(scoped, period)

	return statistics.SupervisorStats{
		SupervisorID:   supervisor.ID(),
		Role:           supervisor.Role().String(),
		Subordinates:   len(subs),
		Tasks:          counts,
		CompletionRate: statistics.Rate(counts.Completed, counts.Total),
	}
}

func routeAnchor(r *route.Route) time.Time {
	if st := r.StartTime(); st != nil {
		return *st
	}
	return r.CreatedAt()
}
