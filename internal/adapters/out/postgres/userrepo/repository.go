package userrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entity = "user"

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker dbutil.AggregateTracker
}

func NewGormUserRepository(db *gorm.DB, tracker dbutil.AggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *org.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert user %s", aggregate.ID())
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites every profile column, clearing those the new role does not use.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *org.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	if err := dbutil.UpdateVersioned(ctx, r.db, &dto, entity, aggregate.ID(), aggregate.Version()); err != nil {
		return err
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*org.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbutil.NotFound(err, entity, id)
	}
	return toDomain(dto)
}

// ListByCompany returns every member of the company ordered by username.
func (r *GormUserRepository) ListByCompany(ctx context.Context, companyID kernel.UUID) ([]*org.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID.Bytes()).
		Order("username").
		Find(&dtos).Error; err != nil {
		return nil, errors.Wrapf(err, "list users of company %s", companyID)
	}

	users := make([]*org.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
