package policy_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/org/orgtest"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/policy"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	acme, globex orgtest.Tenant
	admin        *org.User
	task         *task.Task
	route        *route.Route
	doc          *document.Document
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		acme:   orgtest.NewTenant(t, "acme"),
		globex: orgtest.NewTenant(t, "globex"),
		admin:  orgtest.NewAdmin(t),
	}

	tk, err := task.NewTask(kernel.NewUUID(), "Deliver", "", f.acme.Company.ID(), f.acme.Operator.ID(), nil, now)
	require.NoError(t, err)
	require.NoError(t, tk.Assign(f.acme.Driver, now))
	f.task = tk

	w, err := route.NewWaypoint("A", 1)
	require.NoError(t, err)
	r, err := route.NewRoute(kernel.NewUUID(), f.acme.Company.ID(), route.Plan{
		StartPoint: "S", EndPoint: "E", Waypoints: []route.Waypoint{w}, Distance: decimal.NewFromInt(10),
	}, now)
	require.NoError(t, err)
	require.NoError(t, r.AssignDriver(f.acme.Driver, now))
	require.NoError(t, r.LinkTask(tk, now))
	f.route = r

	d, err := document.NewDocument(kernel.NewUUID(), "Invoice", "f1", document.CategoryInvoice,
		f.acme.Manager.ID(), f.acme.Company.ID(), document.Links{TaskID: kernel.Ptr(tk.ID())}, now)
	require.NoError(t, err)
	f.doc = d

	return f
}

func TestTaskPredicates(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name                           string
		actor                          *org.User
		view, edit, del, complete, run bool
	}{
		{"admin", f.admin, true, true, true, true, true},
		{"owner", f.acme.Owner, true, true, true, true, true},
		{"manager", f.acme.Manager, true, true, true, true, true},
		{"operator creator", f.acme.Operator, true, true, true, true, true},
		{"assigned driver", f.acme.Driver, true, false, false, true, true},
		{"unassigned driver", f.acme.OtherDriver, false, false, false, false, false},
		{"foreign manager", f.globex.Manager, false, false, false, false, false},
		{"foreign owner", f.globex.Owner, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.view, policy.CanViewTask(tt.actor, f.task), "view")
			assert.Equal(t, tt.edit, policy.CanEditTask(tt.actor, f.task), "edit")
			assert.Equal(t, tt.del, policy.CanDeleteTask(tt.actor, f.task), "delete")
			assert.Equal(t, tt.complete, policy.CanCompleteTask(tt.actor, f.task), "complete")
			assert.Equal(t, tt.run, policy.CanStartTask(tt.actor, f.task), "start")
		})
	}
}

func TestTaskPredicates_OperatorWhoIsNotCreator(t *testing.T) {
	f := newFixture(t)
	operator := orgtest.NewUser(t, "op2", org.OperatorProfile{CompanyID: kernel.Ptr(f.acme.Company.ID())})

	assert.True(t, policy.CanEditTask(operator, f.task))
	assert.False(t, policy.CanDeleteTask(operator, f.task))
	assert.False(t, policy.CanCompleteTask(operator, f.task))
}

func TestRoutePredicates(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name                          string
		actor                         *org.User
		view, edit, del, cancel, sign bool
	}{
		{"admin", f.admin, true, true, true, true, false},
		{"owner", f.acme.Owner, true, true, true, true, false},
		{"manager", f.acme.Manager, true, true, true, true, false},
		{"operator", f.acme.Operator, true, true, false, true, false},
		{"route driver", f.acme.Driver, true, true, false, true, true},
		{"other driver", f.acme.OtherDriver, false, false, false, false, false},
		{"foreign driver", f.globex.Driver, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.view, policy.CanViewRoute(tt.actor, f.route), "view")
			assert.Equal(t, tt.edit, policy.CanEditRoute(tt.actor, f.route), "edit")
			assert.Equal(t, tt.del, policy.CanDeleteRoute(tt.actor, f.route), "delete")
			assert.Equal(t, tt.cancel, policy.CanCancelRoute(tt.actor, f.route), "cancel")
			assert.Equal(t, tt.sign, policy.CanDriveRoute(tt.actor, f.route), "drive")
		})
	}
}

func TestRoutePredicates_DriverLosesRightsAsRouteProgresses(t *testing.T) {
	f := newFixture(t)
	driver := f.acme.Driver

	require.NoError(t, f.route.Start(now))
	assert.True(t, policy.CanEditRoute(driver, f.route))
	assert.False(t, policy.CanCancelRoute(driver, f.route))

	require.NoError(t, f.route.Complete(now))
	assert.False(t, policy.CanEditRoute(driver, f.route))
	assert.True(t, policy.CanViewRoute(driver, f.route))
}

func TestDocumentPredicates(t *testing.T) {
	f := newFixture(t)
	links := policy.DocumentLinks{Task: f.task}

	t.Run("drivers need a direct relation", func(t *testing.T) {
		assert.True(t, policy.CanViewDocument(f.acme.Driver, f.doc, links))
		assert.False(t, policy.CanViewDocument(f.acme.Driver, f.doc, policy.DocumentLinks{}))
		assert.False(t, policy.CanViewDocument(f.acme.OtherDriver, f.doc, links))

		f.doc.GrantAccess(kernel.Ptr(f.acme.OtherDriver.ID()))
		assert.True(t, policy.CanViewDocument(f.acme.OtherDriver, f.doc, links))
		f.doc.GrantAccess(nil)

		assert.True(t, policy.CanViewDocument(f.acme.Driver, f.doc, policy.DocumentLinks{Route: f.route}))
	})

	t.Run("staff of the company can view", func(t *testing.T) {
		assert.True(t, policy.CanViewDocument(f.acme.Operator, f.doc, policy.DocumentLinks{}))
		assert.False(t, policy.CanViewDocument(f.globex.Owner, f.doc, links))
	})

	t.Run("edit is uploader owner or manager", func(t *testing.T) {
		assert.True(t, policy.CanEditDocument(f.acme.Manager, f.doc))
		assert.True(t, policy.CanEditDocument(f.acme.Owner, f.doc))
		assert.False(t, policy.CanEditDocument(f.acme.Operator, f.doc))
	})

	t.Run("task creator may delete", func(t *testing.T) {
		assert.True(t, policy.CanDeleteDocument(f.acme.Operator, f.doc, links))
		assert.False(t, policy.CanDeleteDocument(f.acme.Operator, f.doc, policy.DocumentLinks{}))
		assert.False(t, policy.CanDeleteDocument(f.acme.Driver, f.doc, links))
	})
}

func TestDriverOutsideCompanyIsAlwaysDenied(t *testing.T) {
	f := newFixture(t)
	foreign := f.globex.Driver

	// Even with a grant and being named driver/assignee, another tenant's driver sees nothing.
	f.doc.GrantAccess(kernel.Ptr(foreign.ID()))
	forged, err := task.RestoreTask(f.task.ID(), "x", "", task.New, f.acme.Company.ID(), foreign.ID(),
		kernel.Ptr(foreign.ID()), nil, now, now, 1)
	require.NoError(t, err)
	forgedRoute, err := route.RestoreRoute(f.route.ID(), f.acme.Company.ID(), nil, kernel.Ptr(foreign.ID()),
		route.Plan{StartPoint: "S", EndPoint: "E"}, route.Planned, nil, nil, now, now, 1)
	require.NoError(t, err)

	assert.False(t, policy.CanViewTask(foreign, forged))
	assert.False(t, policy.CanCompleteTask(foreign, forged))
	assert.False(t, policy.CanViewRoute(foreign, forgedRoute))
	assert.False(t, policy.CanEditRoute(foreign, forgedRoute))
	assert.False(t, policy.CanDriveRoute(foreign, forgedRoute))
	assert.False(t, policy.CanViewDocument(foreign, f.doc, policy.DocumentLinks{Task: forged, Route: forgedRoute}))
}

func TestUnassignedAndInactiveUsers(t *testing.T) {
	f := newFixture(t)
	unassigned := orgtest.NewUser(t, "floating", org.ManagerProfile{})

	assert.False(t, policy.CanViewTask(unassigned, f.task))
	assert.False(t, policy.CanCreate(unassigned, f.acme.Company.ID()))

	f.acme.Manager.Deactivate()
	assert.False(t, policy.CanEditTask(f.acme.Manager, f.task))
	f.acme.Manager.Activate()

	assert.False(t, policy.CanViewTask(nil, f.task))
}

func TestCanCreate(t *testing.T) {
	f := newFixture(t)
	company := f.acme.Company.ID()

	assert.True(t, policy.CanCreate(f.admin, company))
	assert.True(t, policy.CanCreate(f.acme.Owner, company))
	assert.True(t, policy.CanCreate(f.acme.Manager, company))
	assert.True(t, policy.CanCreate(f.acme.Operator, company))
	assert.False(t, policy.CanCreate(f.acme.Driver, company))
	assert.False(t, policy.CanCreate(f.globex.Manager, company))
}

func TestCanMessage(t *testing.T) {
	f := newFixture(t)
	a := f.acme

	tests := []struct {
		name      string
		from, to  *org.User
		permitted bool
	}{
		{"admin to anyone", f.admin, f.globex.Driver, true},
		{"manager to driver", a.Manager, a.Driver, true},
		{"driver to own operator", a.Driver, a.Operator, true},
		{"driver to manager", a.Driver, a.Manager, true},
		{"driver to owner", a.Driver, a.Owner, true},
		{"driver to driver", a.Driver, a.OtherDriver, false},
		{"unlinked driver to operator", a.OtherDriver, a.Operator, false},
		{"cross company", a.Manager, f.globex.Manager, false},
		{"to admin", a.Manager, f.admin, false},
		{"self", a.Manager, a.Manager, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.permitted, policy.CanMessage(tt.from, tt.to))
		})
	}
}

func TestCanMarkMessageRead(t *testing.T) {
	f := newFixture(t)
	a := f.acme
	m, err := document.NewMessage(kernel.NewUUID(), a.Driver.ID(), a.Operator.ID(), nil, a.Company.ID(), "hi", now)
	require.NoError(t, err)

	assert.True(t, policy.CanMarkMessageRead(a.Operator, m))
	assert.False(t, policy.CanMarkMessageRead(a.Driver, m), "sender")
	assert.False(t, policy.CanMarkMessageRead(a.Manager, m), "supervisor of the recipient")
	assert.False(t, policy.CanMarkMessageRead(f.admin, m))
}

func TestCanManageUser(t *testing.T) {
	f := newFixture(t)

	assert.True(t, policy.CanManageUser(f.admin, f.acme.Driver))
	assert.True(t, policy.CanManageUser(f.acme.Owner, f.acme.Driver))
	assert.False(t, policy.CanManageUser(f.acme.Owner, f.acme.Owner))
	assert.False(t, policy.CanManageUser(f.acme.Owner, f.globex.Driver))
	assert.False(t, policy.CanManageUser(f.acme.Manager, f.acme.Driver))
	assert.True(t, policy.CanDeleteCompany(f.admin))
	assert.False(t, policy.CanDeleteCompany(f.acme.Owner))
}

func TestTaskMessageRecipient(t *testing.T) {
	f := newFixture(t)

	to, ok := policy.TaskMessageRecipient(f.acme.Driver, f.task)
	require.True(t, ok)
	assert.True(t, to.IsEqual(f.acme.Operator.ID()))

	to, ok = policy.TaskMessageRecipient(f.acme.Manager, f.task)
	require.True(t, ok)
	assert.True(t, to.IsEqual(f.acme.Driver.ID()))

	unassigned, err := task.NewTask(kernel.NewUUID(), "t", "", f.acme.Company.ID(), f.acme.Manager.ID(), nil, now)
	require.NoError(t, err)
	_, ok = policy.TaskMessageRecipient(f.acme.Manager, unassigned)
	assert.False(t, ok)
}

func TestCan_Dispatch(t *testing.T) {
	f := newFixture(t)
	doc := policy.LinkedDocument{Document: f.doc, Links: policy.DocumentLinks{Task: f.task}}

	assert.True(t, policy.Can(f.acme.Driver, policy.ActionView, f.task))
	assert.True(t, policy.Can(f.acme.Driver, policy.ActionDrive, f.route))
	assert.True(t, policy.Can(f.acme.Operator, policy.ActionDelete, doc))
	assert.True(t, policy.Can(f.acme.Manager, policy.ActionCreate, f.acme.Company.ID()))
	assert.True(t, policy.Can(f.acme.Driver, policy.ActionMessage, f.acme.Operator))
	assert.False(t, policy.Can(f.acme.Manager, policy.ActionMessage, f.task))
	assert.False(t, policy.Can(f.acme.Manager, policy.ActionView, "not a target"))
}

func TestRequire(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, policy.Require(true, f.acme.Manager, policy.ActionEdit, "task"))

	err := policy.Require(false, f.acme.Driver, policy.ActionDelete, "task "+f.task.ID().String())
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Contains(t, err.Error(), f.acme.Driver.ID().String())
	assert.Contains(t, err.Error(), "delete")

	assert.ErrorIs(t, policy.Require(false, nil, policy.ActionView, "task"), errs.ErrForbidden)
}

func TestCanAttachDocument(t *testing.T) {
	f := newFixture(t)
	acmeID := f.acme.Company.ID()
	onTask := policy.DocumentLinks{Task: f.task}

	assert.True(t, policy.CanAttachDocument(f.acme.Operator, acmeID, policy.DocumentLinks{}))
	assert.True(t, policy.CanAttachDocument(f.admin, acmeID, onTask))
	assert.True(t, policy.CanAttachDocument(f.acme.Driver, acmeID, onTask))
	assert.True(t, policy.CanAttachDocument(f.acme.Driver, acmeID, policy.DocumentLinks{Route: f.route}))

	assert.False(t, policy.CanAttachDocument(f.acme.Driver, acmeID, policy.DocumentLinks{}))
	assert.False(t, policy.CanAttachDocument(f.acme.OtherDriver, acmeID, onTask))
	assert.False(t, policy.CanAttachDocument(f.globex.Manager, acmeID, onTask))
	assert.False(t, policy.CanAttachDocument(f.globex.Manager, f.globex.Company.ID(), onTask), "task of another company")
}

func TestCanGrantProfile(t *testing.T) {
	f := newFixture(t)
	acmeID := kernel.Ptr(f.acme.Company.ID())

	assert.True(t, policy.CanGrantProfile(f.admin, org.AdminProfile{Level: 1}))
	assert.True(t, policy.CanGrantProfile(f.acme.Owner, org.ManagerProfile{CompanyID: acmeID}))

	assert.False(t, policy.CanGrantProfile(f.acme.Owner, org.AdminProfile{Level: 1}))
	assert.False(t, policy.CanGrantProfile(f.acme.Owner, org.ManagerProfile{CompanyID: kernel.Ptr(f.globex.Company.ID())}))
	assert.False(t, policy.CanGrantProfile(f.acme.Manager, org.DriverProfile{CompanyID: acmeID}))
}
