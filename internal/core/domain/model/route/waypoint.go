package route

import (
	"strings"
	"time"

	"logistics/internal/pkg/errs"
)

// Waypoint is an ordered stop of a route. Its persisted shape is
// {location, order, completed, completion_time}.
type Waypoint struct {
	location       string
	order          int
	completed      bool
	completionTime *time.Time
}

// NewWaypoint creates a pending waypoint. order starts at 1.
func NewWaypoint(location string, order int) (Waypoint, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Waypoint{}, errs.NewValueIsRequiredError("waypoint location")
	}
	if order < 1 {
		return Waypoint{}, errs.NewValueIsOutOfRangeError("waypoint order", order, 1, "unbounded")
	}
	return Waypoint{location: location, order: order}, nil
}

// RestoreWaypoint rebuilds a waypoint from stored data.
func RestoreWaypoint(location string, order int, completed bool, completionTime *time.Time) (Waypoint, error) {
	w, err := NewWaypoint(location, order)
	if err != nil {
		return Waypoint{}, err
	}
	w.completed = completed
	if completed && completionTime != nil {
		ct := *completionTime
		w.completionTime = &ct
	}
	return w, nil
}

func (w Waypoint) Location() string { return w.location }
func (w Waypoint) Order() int       { return w.order }
func (w Waypoint) Completed() bool  { return w.completed }

// CompletionTime is nil until the waypoint is completed (and for legacy rows without one).
func (w Waypoint) CompletionTime() *time.Time {
	if w.completionTime == nil {
		return nil
	}
	ct := *w.completionTime
	return &ct
}

// Progress summarizes waypoint completion.
type Progress struct {
	Total      int
	Completed  int
	Percentage float64
}
