package commands_test

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

var t0 = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

type env struct {
	clock  *kernel.FixedClock
	acme   orgtest.Tenant
	globex orgtest.Tenant
	admin  *org.User

	taskID  kernel.UUID
	routeID kernel.UUID
}

func newEnv(t *testing.T) env {
	t.Helper()
	return env{
		clock:   kernel.NewFixedClock(t0),
		acme:    orgtest.NewTenant(t, "acme"),
		globex:  orgtest.NewTenant(t, "globex"),
		admin:   orgtest.NewAdmin(t),
		taskID:  kernel.NewUUID(),
		routeID: kernel.NewUUID(),
	}
}

// task returns a fresh copy of the acme task created by the operator and
// assigned to the driver, as a repository would after loading it.
func (e env) task(t *testing.T, status task.Status) *task.Task {
	t.Helper()
	tk, err := task.RestoreTask(e.taskID, "Deliver pallets", "", status,
		e.acme.Company.ID(), e.acme.Operator.ID(), kernel.Ptr(e.acme.Driver.ID()), nil, t0, t0, 1)
	require.NoError(t, err)
	return tk
}

// route returns a fresh copy of the driver's three-stop route linked to the task.
func (e env) route(t *testing.T, status route.Status) *route.Route {
	t.Helper()
	var waypoints []route.Waypoint
	for i, loc := range []string{"Dock A", "Dock B", "Dock C"} {
		w, err := route.NewWaypoint(loc, i+1)
		require.NoError(t, err)
		waypoints = append(waypoints, w)
	}
	var actualStart *time.Time
	if status != route.Planned {
		actualStart = &t0
	}
	r, err := route.RestoreRoute(e.routeID, e.acme.Company.ID(), kernel.Ptr(e.taskID), kernel.Ptr(e.acme.Driver.ID()),
		route.Plan{
			StartPoint:       "Warehouse",
			EndPoint:         "Store",
			Waypoints:        waypoints,
			Distance:         decimal.RequireFromString("12.5"),
			EstimatedMinutes: 60,
			StartTime:        &t0,
		},
		status, actualStart, nil, t0, t0, 1)
	require.NoError(t, err)
	return r
}
