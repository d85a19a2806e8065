// Package statisticsrepo stores report snapshots. The computed report is
// kept as a JSON document next to its period columns.
package statisticsrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/statistics"

	"github.com/google/uuid"
)

type SnapshotDTO struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uniq_snapshot_company_period"`
	PeriodStart  time.Time         `gorm:"not null;uniqueIndex:uniq_snapshot_company_period"`
	PeriodEnd    time.Time         `gorm:"not null;uniqueIndex:uniq_snapshot_company_period"`
	CalculatedAt time.Time         `gorm:"not null"`
	Metrics      statistics.Report `gorm:"serializer:json;type:jsonb;not null"`
}

func (SnapshotDTO) TableName() string {
	return "statistics_snapshots"
}

func fromDomain(s *statistics.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		ID:           s.ID().Bytes(),
		CompanyID:    s.CompanyID().Bytes(),
		PeriodStart:  s.Period().Start,
		PeriodEnd:    s.Period().End,
		CalculatedAt: s.CalculatedAt(),
		Metrics:      s.Report(),
	}
}

func toDomain(dto SnapshotDTO) (*statistics.Snapshot, error) {
	id, err := dbutil.ID(dto.ID)
	if err != nil {
		return nil, err
	}

	report := dto.Metrics
	report.Period = statistics.Period{Start: dto.PeriodStart.UTC(), End: dto.PeriodEnd.UTC()}
	report.CalculatedAt = dto.CalculatedAt.UTC()
	return statistics.NewSnapshot(id, report)
}
