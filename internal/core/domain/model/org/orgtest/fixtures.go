// Package orgtest builds org hierarchies for tests.
package orgtest

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"

	"github.com/stretchr/testify/require"
)

// Tenant is a company with one user per role and a reporting chain
// Manager -> Operator -> Driver. OtherDriver belongs to the same company but
// reports to nobody.
type Tenant struct {
	Company     *org.Company
	Owner       *org.User
	Manager     *org.User
	Operator    *org.User
	Driver      *org.User
	OtherDriver *org.User
}

// Users returns every member of the tenant.
func (tn Tenant) Users() []*org.User {
	return []*org.User{tn.Owner, tn.Manager, tn.Operator, tn.Driver, tn.OtherDriver}
}

// Hierarchy indexes the tenant's users.
func (tn Tenant) Hierarchy() *org.Hierarchy {
	return org.NewHierarchy(tn.Users())
}

// NewTenant builds a tenant named name.
func NewTenant(t testing.TB, name string) Tenant {
	t.Helper()

	company, err := org.NewCompany(kernel.NewUUID(), name, "7700000000", "1 Main St", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	cid := kernel.Ptr(company.ID())

	owner := NewUser(t, name+"-owner", org.OwnerProfile{CompanyID: cid})
	manager := NewUser(t, name+"-manager", org.ManagerProfile{CompanyID: cid})
	operator := NewUser(t, name+"-operator", org.OperatorProfile{CompanyID: cid, ManagerID: kernel.Ptr(manager.ID())})
	driver := NewUser(t, name+"-driver", org.DriverProfile{
		CompanyID:  cid,
		OperatorID: kernel.Ptr(operator.ID()),
		License:    "AB123456",
		Vehicle:    "Ford Transit",
	})
	other := NewUser(t, name+"-driver2", org.DriverProfile{CompanyID: cid})

	return Tenant{
		Company:     company,
		Owner:       owner,
		Manager:     manager,
		Operator:    operator,
		Driver:      driver,
		OtherDriver: other,
	}
}

// NewAdmin creates a platform administrator.
func NewAdmin(t testing.TB) *org.User {
	t.Helper()
	return NewUser(t, "admin", org.AdminProfile{Level: 1})
}

// NewUser creates a user with profile p.
func NewUser(t testing.TB, username string, p org.Profile) *org.User {
	t.Helper()
	u, err := org.NewUser(kernel.NewUUID(), username, username, p)
	require.NoError(t, err)
	return u
}
