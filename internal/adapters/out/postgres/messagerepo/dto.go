// Package messagerepo persists user-to-user messages.
package messagerepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/document"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TaskID      *uuid.UUID `gorm:"type:uuid;index"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Body        string     `gorm:"type:text;not null"`
	Read        bool       `gorm:"not null;default:false"`
	SentAt      time.Time  `gorm:"not null"`
}

func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(m *document.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		SenderID:    m.SenderID().Bytes(),
		RecipientID: m.RecipientID().Bytes(),
		TaskID:      dbutil.UUIDPtr(m.TaskID()),
		CompanyID:   m.CompanyID().Bytes(),
		Body:        m.Body(),
		Read:        m.Read(),
		SentAt:      m.SentAt(),
	}
}

func toDomain(dto MessageDTO) (*document.Message, error) {
	id, err := dbutil.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	senderID, err := dbutil.ID(dto.SenderID)
	if err != nil {
		return nil, err
	}
	recipientID, err := dbutil.ID(dto.RecipientID)
	if err != nil {
		return nil, err
	}
	taskID, err := dbutil.IDPtr(dto.TaskID)
	if err != nil {
		return nil, err
	}
	companyID, err := dbutil.ID(dto.CompanyID)
	if err != nil {
		return nil, err
	}

	return document.RestoreMessage(id, senderID, recipientID, taskID, companyID, dto.Body, dto.Read, dto.SentAt.UTC())
}
