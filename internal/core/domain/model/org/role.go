package org

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Role identifies the position of a user in the org hierarchy.
//
//	Admin -> CompanyOwner -> Manager -> Operator -> Driver
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Admin
	CompanyOwner
	Manager
	Operator
	Driver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "Unknown",
		Admin:        "Admin",
		CompanyOwner: "CompanyOwner",
		Manager:      "Manager",
		Operator:     "Operator",
		Driver:       "Driver",
	}
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if r <= UnknownRole || r > Driver {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// IsStaff reports whether the role belongs to company staff above the driver level.
func (r Role) IsStaff() bool {
	return r == CompanyOwner || r == Manager || r == Operator
}

// ParseRole accepts role names case-insensitively, with or without underscores.
func ParseRole(s string) (Role, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
	for role, name := range getRoleStrings() {
		if role != UnknownRole && strings.ToLower(name) == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
}
