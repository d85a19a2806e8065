// Package userrepo persists users. The role profile lives in the same row,
// so swapping a role replaces the whole profile in one UPDATE.
package userrepo

import (
	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/org"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"size:150;not null;uniqueIndex"`
	FullName string    `gorm:"size:255"`
	Active   bool      `gorm:"not null;default:true"`

	Role       string     `gorm:"size:20;not null"`
	CompanyID  *uuid.UUID `gorm:"type:uuid;index"`
	ManagerID  *uuid.UUID `gorm:"type:uuid;index"`
	OperatorID *uuid.UUID `gorm:"type:uuid;index"`
	AdminLevel int
	License    string `gorm:"size:50"`
	Vehicle    string `gorm:"size:100"`

	Version int64 `gorm:"not null;default:1"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *org.User) UserDTO {
	dto := UserDTO{
		ID:       u.ID().Bytes(),
		Username: u.Username(),
		FullName: u.FullName(),
		Active:   u.Active(),
		Role:     u.Role().String(),
		Version:  u.Version(),
	}

	dto.CompanyID = dbutil.UUIDPtr(u.Profile().Company())
	switch p := u.Profile().(type) {
	case org.AdminProfile:
		dto.AdminLevel = p.Level
	case org.OperatorProfile:
		dto.ManagerID = dbutil.UUIDPtr(p.ManagerID)
	case org.DriverProfile:
		dto.OperatorID = dbutil.UUIDPtr(p.OperatorID)
		dto.License = p.License
		dto.Vehicle = p.Vehicle
	}
	return dto
}

func toDomain(dto UserDTO) (*org.User, error) {
	id, err := dbutil.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	profile, err := profileFromRow(dto)
	if err != nil {
		return nil, err
	}
	return org.RestoreUser(id, dto.Username, dto.FullName, dto.Active, profile, dto.Version)
}

func profileFromRow(dto UserDTO) (org.Profile, error) {
	role, err := org.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	companyID, err := dbutil.IDPtr(dto.CompanyID)
	if err != nil {
		return nil, err
	}

	switch role {
	case org.Admin:
		return org.AdminProfile{Level: dto.AdminLevel}, nil
	case org.CompanyOwner:
		return org.OwnerProfile{CompanyID: companyID}, nil
	case org.Manager:
		return org.ManagerProfile{CompanyID: companyID}, nil
	case org.Operator:
		managerID, idErr := dbutil.IDPtr(dto.ManagerID)
		if idErr != nil {
			return nil, idErr
		}
		return org.OperatorProfile{CompanyID: companyID, ManagerID: managerID}, nil
	case org.Driver:
		operatorID, idErr := dbutil.IDPtr(dto.OperatorID)
		if idErr != nil {
			return nil, idErr
		}
		return org.DriverProfile{
			CompanyID:  companyID,
			OperatorID: operatorID,
			License:    dto.License,
			Vehicle:    dto.Vehicle,
		}, nil
	default:
		return nil, errors.Errorf("user %s has unsupported role %q", dto.ID, dto.Role)
	}
}
