package statistics

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// ErrSnapshotIsNotConstructed is returned by Validate on a zero-value Snapshot.
var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot")

// Snapshot is an append-only record of a computed report.
type Snapshot struct {
	id     kernel.UUID
	report Report

	isConstructed bool
}

// NewSnapshot wraps report. The report must name its company.
func NewSnapshot(id kernel.UUID, report Report) (*Snapshot, error) {
	if err := errors.Join(id.Validate(), report.Company.CompanyID.Validate()); err != nil {
		return nil, err
	}
	return &Snapshot{id: id, report: report, isConstructed: true}, nil
}

func (s *Snapshot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSnapshotIsNotConstructed
	}
	return nil
}

func (s *Snapshot) ID() kernel.UUID         { return s.id }
func (s *Snapshot) CompanyID() kernel.UUID  { return s.report.Company.CompanyID }
func (s *Snapshot) Period() Period          { return s.report.Period }
func (s *Snapshot) CalculatedAt() time.Time { return s.report.CalculatedAt }
func (s *Snapshot) Report() Report          { return s.report }
