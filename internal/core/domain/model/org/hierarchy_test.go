package org_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/org/orgtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchy_Subordinates(t *testing.T) {
	tn := orgtest.NewTenant(t, "acme")
	h := tn.Hierarchy()

	t.Run("manager sees operators and their drivers", func(t *testing.T) {
		subs := h.Subordinates(tn.Manager)

		require.Len(t, subs, 2)
		assert.True(t, h.IsSubordinate(tn.Manager, tn.Operator.ID()))
		assert.True(t, h.IsSubordinate(tn.Manager, tn.Driver.ID()))
		assert.False(t, h.IsSubordinate(tn.Manager, tn.OtherDriver.ID()))
	})

	t.Run("operator sees its drivers only", func(t *testing.T) {
		subs := h.Subordinates(tn.Operator)

		require.Len(t, subs, 1)
		assert.True(t, subs[0].IsEqual(tn.Driver.ID()))
	})

	t.Run("drivers and owners have no subordinates", func(t *testing.T) {
		assert.Empty(t, h.Subordinates(tn.Driver))
		assert.Empty(t, h.Subordinates(tn.Owner))
	})

	t.Run("subordinate drivers", func(t *testing.T) {
		drivers := h.SubordinateDrivers(tn.Manager)

		require.Len(t, drivers, 1)
		assert.True(t, drivers[0].IsEqual(tn.Driver))
	})
}

func TestHierarchy_IgnoresOtherCompanies(t *testing.T) {
	acme := orgtest.NewTenant(t, "acme")
	globex := orgtest.NewTenant(t, "globex")

	// A globex driver that claims an acme operator must not be reported.
	intruder := orgtest.NewUser(t, "intruder", org.DriverProfile{
		CompanyID:  kernel.Ptr(globex.Company.ID()),
		OperatorID: kernel.Ptr(acme.Operator.ID()),
	})
	h := org.NewHierarchy(append(append(acme.Users(), globex.Users()...), intruder))

	assert.False(t, h.IsSubordinate(acme.Operator, intruder.ID()))
	assert.Len(t, h.Subordinates(acme.Operator), 1)
}

func TestHierarchy_Lookups(t *testing.T) {
	tn := orgtest.NewTenant(t, "acme")
	h := tn.Hierarchy()

	counts := h.CountByRole(tn.Company.ID())
	assert.Equal(t, 2, counts[org.Driver])
	assert.Equal(t, 1, counts[org.Operator])
	assert.Equal(t, 1, counts[org.Manager])

	u, ok := h.User(tn.Driver.ID())
	require.True(t, ok)
	assert.Same(t, tn.Driver, u)
	assert.Len(t, h.Users(), 5)
}

func TestSupervisorOf(t *testing.T) {
	tn := orgtest.NewTenant(t, "acme")

	op, ok := org.SupervisorOf(tn.Driver)
	require.True(t, ok)
	assert.True(t, op.IsEqual(tn.Operator.ID()))

	mgr, ok := org.SupervisorOf(tn.Operator)
	require.True(t, ok)
	assert.True(t, mgr.IsEqual(tn.Manager.ID()))

	for _, u := range []*org.User{tn.OtherDriver, tn.Manager, tn.Owner} {
		_, ok = org.SupervisorOf(u)
		assert.False(t, ok, u.Username())
	}
}
