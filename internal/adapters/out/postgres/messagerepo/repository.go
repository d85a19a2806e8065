package messagerepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entity = "message"

// GormMessageRepository implements ports.MessageRepository using GORM.
type GormMessageRepository struct {
	db      *gorm.DB
	tracker dbutil.AggregateTracker
}

func NewGormMessageRepository(db *gorm.DB, tracker dbutil.AggregateTracker) *GormMessageRepository {
	return &GormMessageRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMessageRepository) Add(ctx context.Context, m *document.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert message %s", m.ID())
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

func (r *GormMessageRepository) Get(ctx context.Context, id kernel.UUID) (*document.Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MessageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbutil.NotFound(err, entity, id)
	}
	return toDomain(dto)
}

func (r *GormMessageRepository) Update(ctx context.Context, m *document.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", m.ID().Bytes()).
		Update("read", m.Read())
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update message %s", m.ID())
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, m.ID().String())
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

func (r *GormMessageRepository) DeleteByTask(ctx context.Context, taskID kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&MessageDTO{}, "task_id = ?", taskID.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete messages of task %s", taskID)
	}
	return nil
}

func (r *GormMessageRepository) DeleteByCompany(ctx context.Context, companyID kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&MessageDTO{}, "company_id = ?", companyID.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete messages of company %s", companyID)
	}
	return nil
}

// ListByTask returns the task thread in the order it was written.
func (r *GormMessageRepository) ListByTask(ctx context.Context, taskID kernel.UUID) ([]*document.Message, error) {
	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID.Bytes()).
		Order("sent_at").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, errors.Wrapf(err, "list messages of task %s", taskID)
	}

	msgs := make([]*document.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
