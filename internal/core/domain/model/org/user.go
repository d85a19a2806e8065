package org

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned by Validate on a zero-value User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an aggregate holding identity and the single role profile of a person.
//
// Invariants:
//   - exactly one profile, whose type defines Role()
//   - a non-admin profile references at most one company
//   - a role change replaces the whole profile in one step
type User struct {
	kernel.Versioned

	id       kernel.UUID
	username string
	fullName string
	active   bool
	profile  Profile

	isConstructed bool
}

// NewUser creates an active user with the given profile.
func NewUser(id kernel.UUID, username, fullName string, profile Profile) (*User, error) {
	u := &User{active: true, isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setProfile(profile),
	); err != nil {
		return nil, err
	}
	u.fullName = strings.TrimSpace(fullName)

	return u, nil
}

// RestoreUser rebuilds a user from persisted state.
func RestoreUser(
	id kernel.UUID,
	username, fullName string,
	active bool,
	profile Profile,
	version int64,
) (*User, error) {
	u, err := NewUser(id, username, fullName, profile)
	if err != nil {
		return nil, err
	}
	u.active = active
	u.SetVersion(version)
	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) FullName() string     { return u.fullName }
func (u *User) Active() bool         { return u.active }
func (u *User) Profile() Profile     { return u.profile }
func (u *User) Role() Role           { return u.profile.Role() }
func (u *User) IsEqual(o *User) bool { return o != nil && u.id.IsEqual(o.id) }

// CompanyID resolves the tenant of the user. The second result is false for
// admins and for users whose profile has no company; such users must be treated
// as having no access to tenant-scoped data.
func (u *User) CompanyID() (kernel.UUID, bool) {
	if u == nil || u.profile == nil {
		return kernel.UUID{}, false
	}
	id := u.profile.Company()
	if id == nil {
		return kernel.UUID{}, false
	}
	return *id, true
}

// BelongsTo reports whether the user is assigned to the given company.
func (u *User) BelongsTo(companyID kernel.UUID) bool {
	id, ok := u.CompanyID()
	return ok && id.IsEqual(companyID)
}

// HasRole reports whether the user's role is one of roles.
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role() == r {
			return true
		}
	}
	return false
}

// ChangeRole swaps the current profile for newProfile. The old profile is dropped.
func (u *User) ChangeRole(newProfile Profile) error {
	return u.setProfile(newProfile)
}

// DetachCompany removes the company reference (and reporting links) from the profile.
func (u *User) DetachCompany() {
	u.profile = u.profile.withoutCompany()
}

func (u *User) Activate()   { u.active = true }
func (u *User) Deactivate() { u.active = false }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) > 64 {
		return errs.NewValueIsOutOfRangeError("username length", len(username), 1, 64)
	}
	u.username = username
	return nil
}

func (u *User) setProfile(p Profile) error {
	if p == nil {
		return errs.NewValueIsRequiredError("profile")
	}
	if err := p.validate(); err != nil {
		return err
	}
	u.profile = p
	return nil
}
