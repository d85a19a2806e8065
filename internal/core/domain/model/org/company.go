package org

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrCompanyIsNotConstructed is returned by Validate on a zero-value Company.
var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany or RestoreCompany")

// Company is a tenant. Managers, operators and drivers reference it through
// their profiles; deleting it detaches them.
type Company struct {
	id           kernel.UUID
	name         string
	taxID        string
	legalAddress string
	createdAt    time.Time

	isConstructed bool
}

// NewCompany validates and creates a company. taxID and legalAddress are optional.
func NewCompany(id kernel.UUID, name, taxID, legalAddress string, createdAt time.Time) (*Company, error) {
	c := &Company{
		taxID:         strings.TrimSpace(taxID),
		legalAddress:  strings.TrimSpace(legalAddress),
		createdAt:     createdAt,
		isConstructed: true,
	}

	var idErr error
	if idErr = id.Validate(); idErr == nil {
		c.id = id
	}

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("company name")
	}
	c.name = name

	if err := errors.Join(idErr, nameErr); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCompany rebuilds a company from persisted state.
func RestoreCompany(id kernel.UUID, name, taxID, legalAddress string, createdAt time.Time) (*Company, error) {
	return NewCompany(id, name, taxID, legalAddress, createdAt)
}

func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

func (c *Company) ID() kernel.UUID      { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) TaxID() string        { return c.taxID }
func (c *Company) LegalAddress() string { return c.legalAddress }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
