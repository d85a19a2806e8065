// Package taskrepo persists Task aggregates in the tasks table.
package taskrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO is the row layout of a task. Status is stored by name.
type TaskDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"size:200;not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"size:20;not null;index"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index"`
	Deadline    *time.Time
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
	Version     int64     `gorm:"not null;default:1"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID().Bytes(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CompanyID:   t.CompanyID().Bytes(),
		CreatorID:   t.CreatorID().Bytes(),
		AssigneeID:  dbutil.UUIDPtr(t.Assignee()),
		Deadline:    t.Deadline(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		Version:     t.Version(),
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := dbutil.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	companyID, err := dbutil.ID(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	creatorID, err := dbutil.ID(dto.CreatorID)
	if err != nil {
		return nil, err
	}
	assigneeID, err := dbutil.IDPtr(dto.AssigneeID)
	if err != nil {
		return nil, err
	}
	status, err := task.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(id, dto.Title, dto.Description, status, companyID, creatorID, assigneeID,
		dbutil.UTC(dto.Deadline), dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), dto.Version)
}
