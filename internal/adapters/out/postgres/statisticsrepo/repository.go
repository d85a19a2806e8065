package statisticsrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatisticsRepository implements ports.StatisticsRepository. A company
// has at most one snapshot per period.
type GormStatisticsRepository struct {
	db      *gorm.DB
	tracker dbutil.AggregateTracker
}

func NewGormStatisticsRepository(db *gorm.DB, tracker dbutil.AggregateTracker) *GormStatisticsRepository {
	return &GormStatisticsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores s, or replaces the metrics of the snapshot already stored for
// the same company and period. The stored id is kept on replacement.
func (r *GormStatisticsRepository) Add(ctx context.Context, s *statistics.Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "period_start"}, {Name: "period_end"}},
			DoUpdates: clause.AssignmentColumns([]string{"calculated_at", "metrics"}),
		}).
		Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert snapshot %s", s.ID())
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}

// ListByCompany returns snapshots oldest period first.
func (r *GormStatisticsRepository) ListByCompany(ctx context.Context, companyID kernel.UUID) ([]*statistics.Snapshot, error) {
	var dtos []SnapshotDTO
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID.Bytes()).
		Order("period_start").
		Order("calculated_at").
		Find(&dtos).Error; err != nil {
		return nil, errors.Wrapf(err, "list snapshots of company %s", companyID)
	}

	snapshots := make([]*statistics.Snapshot, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

func (r *GormStatisticsRepository) DeleteByCompany(ctx context.Context, companyID kernel.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&SnapshotDTO{}, "company_id = ?", companyID.Bytes()).Error; err != nil {
		return errors.Wrapf(err, "delete snapshots of company %s", companyID)
	}
	return nil
}
