package companyrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormCompanyRepository implements ports.CompanyRepository using GORM.
type GormCompanyRepository struct {
	db      *gorm.DB
	tracker dbutil.AggregateTracker
}

func NewGormCompanyRepository(db *gorm.DB, tracker dbutil.AggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *org.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert company %s", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*org.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbutil.NotFound(err, "company", id)
	}
	return toDomain(dto)
}

// List returns all companies ordered by name.
func (r *GormCompanyRepository) List(ctx context.Context) ([]*org.Company, error) {
	var dtos []CompanyDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, errors.Wrap(err, "list companies")
	}

	companies := make([]*org.Company, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}

func (r *GormCompanyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&CompanyDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete company %s", id)
	}
	return nil
}
