package org

import (
	"logistics/internal/core/domain/model/kernel"
)

// Hierarchy answers reporting-chain questions over a roster of users.
// It is read-only and safe for concurrent use once built.
type Hierarchy struct {
	users map[kernel.UUID]*User
	order []kernel.UUID
}

// NewHierarchy indexes the given users. Nil users are skipped.
func NewHierarchy(users []*User) *Hierarchy {
	h := &Hierarchy{users: make(map[kernel.UUID]*User, len(users))}
	for _, u := range users {
		if u == nil {
			continue
		}
		if _, seen := h.users[u.ID()]; !seen {
			h.order = append(h.order, u.ID())
		}
		h.users[u.ID()] = u
	}
	return h
}

// User looks a user up by id.
func (h *Hierarchy) User(id kernel.UUID) (*User, bool) {
	u, ok := h.users[id]
	return u, ok
}

// Users returns the roster in insertion order.
func (h *Hierarchy) Users() []*User {
	out := make([]*User, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.users[id])
	}
	return out
}

// Subordinates returns the ids reporting to u, transitively: a manager gets
// its operators and their drivers, an operator gets its drivers. Other roles
// have none. Only users of the same company are considered.
func (h *Hierarchy) Subordinates(u *User) []kernel.UUID {
	companyID, ok := u.CompanyID()
	if !ok {
		return nil
	}

	var out []kernel.UUID
	switch u.Role() {
	case Manager:
		for _, op := range h.directReports(u, companyID) {
			out = append(out, op.ID())
			for _, d := range h.directReports(op, companyID) {
				out = append(out, d.ID())
			}
		}
	case Operator:
		for _, d := range h.directReports(u, companyID) {
			out = append(out, d.ID())
		}
	default:
		return nil
	}
	return out
}

// SubordinateDrivers returns the drivers in the reporting chain below u.
func (h *Hierarchy) SubordinateDrivers(u *User) []*User {
	var drivers []*User
	for _, id := range h.Subordinates(u) {
		if sub, ok := h.users[id]; ok && sub.Role() == Driver {
			drivers = append(drivers, sub)
		}
	}
	return drivers
}

// IsSubordinate reports whether id is somewhere below supervisor.
func (h *Hierarchy) IsSubordinate(supervisor *User, id kernel.UUID) bool {
	for _, sub := range h.Subordinates(supervisor) {
		if sub.IsEqual(id) {
			return true
		}
	}
	return false
}

// CountByRole counts the roster members of companyID per role.
func (h *Hierarchy) CountByRole(companyID kernel.UUID) map[Role]int {
	counts := make(map[Role]int)
	for _, id := range h.order {
		u := h.users[id]
		if u.BelongsTo(companyID) {
			counts[u.Role()]++
		}
	}
	return counts
}

func (h *Hierarchy) directReports(boss *User, companyID kernel.UUID) []*User {
	var out []*User
	for _, id := range h.order {
		u := h.users[id]
		if !u.BelongsTo(companyID) || !reportsTo(u.Role(), boss.Role()) {
			continue
		}
		if supervisorID, ok := SupervisorOf(u); ok && supervisorID.IsEqual(boss.ID()) {
			out = append(out, u)
		}
	}
	return out
}

// SupervisorOf returns whom u reports to: a driver's operator or an
// operator's manager. Other roles report to nobody.
func SupervisorOf(u *User) (kernel.UUID, bool) {
	var id *kernel.UUID
	switch p := u.Profile().(type) {
	case DriverProfile:
		id = p.OperatorID
	case OperatorProfile:
		id = p.ManagerID
	}
	if id == nil {
		return kernel.UUID{}, false
	}
	return *id, true
}

func reportsTo(sub, boss Role) bool {
	return (sub == Operator && boss == Manager) || (sub == Driver && boss == Operator)
}
