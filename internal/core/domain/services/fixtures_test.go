package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/org/orgtest"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type world struct {
	clock  *kernel.FixedClock
	acme   orgtest.Tenant
	globex orgtest.Tenant
	admin  *org.User
}

func newWorld(t *testing.T) *world {
	t.Helper()
	return &world{
		clock:  kernel.NewFixedClock(t0),
		acme:   orgtest.NewTenant(t, "acme"),
		globex: orgtest.NewTenant(t, "globex"),
		admin:  orgtest.NewAdmin(t),
	}
}

// assignedTask is created by the operator and assigned to the driver.
func (w *world) assignedTask(t *testing.T) *task.Task {
	t.Helper()
	deadline := t0.Add(48 * time.Hour)
	tk, err := task.NewTask(kernel.NewUUID(), "Deliver", "", w.acme.Company.ID(), w.acme.Operator.ID(), &deadline, t0)
	require.NoError(t, err)
	require.NoError(t, tk.Assign(w.acme.Driver, t0))
	return tk
}

// linkedRoute has three waypoints, the driver assigned, and is linked to tk.
func (w *world) linkedRoute(t *testing.T, tk *task.Task) *route.Route {
	t.Helper()
	wps := make([]route.Waypoint, 0, 3)
	for i, loc := range []string{"A", "B", "C"} {
		wp, err := route.NewWaypoint(loc, i+1)
		require.NoError(t, err)
		wps = append(wps, wp)
	}
	start := t0.Add(time.Hour)
	r, err := route.NewRoute(kernel.NewUUID(), w.acme.Company.ID(), route.Plan{
		StartPoint:       "Warehouse",
		EndPoint:         "Depot",
		Waypoints:        wps,
		Distance:         decimal.RequireFromString("12.5"),
		EstimatedMinutes: 60,
		StartTime:        &start,
	}, t0)
	require.NoError(t, err)
	require.NoError(t, r.AssignDriver(w.acme.Driver, t0))
	if tk != nil {
		require.NoError(t, r.LinkTask(tk, t0))
	}
	return r
}
