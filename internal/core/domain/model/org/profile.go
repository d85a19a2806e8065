package org

import (
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Profile is the role-specific record attached to a User. The concrete type
// is the tag: AdminProfile, OwnerProfile, ManagerProfile, OperatorProfile or
// DriverProfile. The set is closed.
type Profile interface {
	// Role returns the role this profile represents.
	Role() Role
	// Company returns the company the profile belongs to, or nil when unassigned.
	Company() *kernel.UUID

	withoutCompany() Profile
	validate() error
}

// AdminProfile belongs to platform administrators; admins have no company.
type AdminProfile struct {
	Level int
}

// OwnerProfile belongs to the owner of a company.
type OwnerProfile struct {
	CompanyID *kernel.UUID
}

// ManagerProfile belongs to a manager; operators point at it.
type ManagerProfile struct {
	CompanyID *kernel.UUID
}

// OperatorProfile belongs to an operator reporting to at most one manager.
type OperatorProfile struct {
	CompanyID *kernel.UUID
	ManagerID *kernel.UUID
}

// DriverProfile belongs to a driver reporting to at most one operator.
type DriverProfile struct {
	CompanyID  *kernel.UUID
	OperatorID *kernel.UUID
	License    string
	Vehicle    string
}

func (AdminProfile) Role() Role    { return Admin }
func (OwnerProfile) Role() Role    { return CompanyOwner }
func (ManagerProfile) Role() Role  { return Manager }
func (OperatorProfile) Role() Role { return Operator }
func (DriverProfile) Role() Role   { return Driver }

func (AdminProfile) Company() *kernel.UUID      { return nil }
func (p OwnerProfile) Company() *kernel.UUID    { return p.CompanyID }
func (p ManagerProfile) Company() *kernel.UUID  { return p.CompanyID }
func (p OperatorProfile) Company() *kernel.UUID { return p.CompanyID }
func (p DriverProfile) Company() *kernel.UUID   { return p.CompanyID }

func (p AdminProfile) withoutCompany() Profile { return p }
func (OwnerProfile) withoutCompany() Profile   { return OwnerProfile{} }
func (ManagerProfile) withoutCompany() Profile { return ManagerProfile{} }

// An operator detached from its company also loses its manager.
func (OperatorProfile) withoutCompany() Profile { return OperatorProfile{} }

func (p DriverProfile) withoutCompany() Profile {
	return DriverProfile{License: p.License, Vehicle: p.Vehicle}
}

func (p AdminProfile) validate() error {
	if p.Level < 0 {
		return errs.NewValueIsOutOfRangeError("admin level", p.Level, 0, 100)
	}
	return nil
}

func (p OwnerProfile) validate() error   { return validateCompanyRef(p.CompanyID) }
func (p ManagerProfile) validate() error { return validateCompanyRef(p.CompanyID) }

func (p OperatorProfile) validate() error {
	if err := validateCompanyRef(p.CompanyID); err != nil {
		return err
	}
	if p.ManagerID != nil && p.CompanyID == nil {
		return errs.NewValueIsInvalidError("operator cannot report to a manager without a company")
	}
	return validateRef("manager id", p.ManagerID)
}

func (p DriverProfile) validate() error {
	if err := validateCompanyRef(p.CompanyID); err != nil {
		return err
	}
	if p.OperatorID != nil && p.CompanyID == nil {
		return errs.NewValueIsInvalidError("driver cannot report to an operator without a company")
	}
	if len(strings.TrimSpace(p.License)) > 50 {
		return errs.NewValueIsInvalidError("license number is too long")
	}
	return validateRef("operator id", p.OperatorID)
}

func validateCompanyRef(id *kernel.UUID) error {
	return validateRef("company id", id)
}

func validateRef(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}
