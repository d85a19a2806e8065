// Package companyrepo persists tenants.
package companyrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/org"

	"github.com/google/uuid"
)

type CompanyDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	TaxID        string    `gorm:"size:12;not null;uniqueIndex"`
	LegalAddress string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(c *org.Company) CompanyDTO {
	return CompanyDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		TaxID:        c.TaxID(),
		LegalAddress: c.LegalAddress(),
		CreatedAt:    c.CreatedAt(),
	}
}

func toDomain(dto CompanyDTO) (*org.Company, error) {
	id, err := dbutil.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	return org.RestoreCompany(id, dto.Name, dto.TaxID, dto.LegalAddress, dto.CreatedAt.UTC())
}
