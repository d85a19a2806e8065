// Package documentrepo persists document metadata.
package documentrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/document"

	"github.com/google/uuid"
)

type DocumentDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title        string     `gorm:"size:200;not null"`
	FileRef      string     `gorm:"size:500;not null"`
	Category     string     `gorm:"size:20;not null"`
	UploaderID   uuid.UUID  `gorm:"type:uuid;not null"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TaskID       *uuid.UUID `gorm:"type:uuid;index"`
	RouteID      *uuid.UUID `gorm:"type:uuid;index"`
	AccessUserID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"not null"`
	Version      int64      `gorm:"not null;default:1"`
}

func (DocumentDTO) TableName() string {
	return "documents"
}

func fromDomain(d *document.Document) DocumentDTO {
	links := d.Links()
	return DocumentDTO{
		ID:           d.ID().Bytes(),
		Title:        d.Title(),
		FileRef:      d.FileRef(),
		Category:     string(d.Category()),
		UploaderID:   d.UploaderID().Bytes(),
		CompanyID:    d.CompanyID().Bytes(),
		TaskID:       dbutil.UUIDPtr(links.TaskID),
		RouteID:      dbutil.UUIDPtr(links.RouteID),
		AccessUserID: dbutil.UUIDPtr(d.AccessUserID()),
		CreatedAt:    d.CreatedAt(),
		Version:      d.Version(),
	}
}

func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := dbutil.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	uploaderID, err := dbutil.ID(dto.UploaderID)
	if err != nil {
		return nil, err
	}
	companyID, err := dbutil.ID(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	taskID, err := dbutil.IDPtr(dto.TaskID)
	if err != nil {
		return nil, err
	}
	routeID, err := dbutil.IDPtr(dto.RouteID)
	if err != nil {
		return nil, err
	}
	accessUserID, err := dbutil.IDPtr(dto.AccessUserID)
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(id, dto.Title, dto.FileRef, document.Category(dto.Category),
		uploaderID, companyID, document.Links{TaskID: taskID, RouteID: routeID}, accessUserID,
		dto.CreatedAt.UTC(), dto.Version)
}
