package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"
)

// ReportCache keeps computed reports keyed by company and period.
type ReportCache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, companyID kernel.UUID, period statistics.Period) (report statistics.Report, found bool, err error)
	Set(ctx context.Context, report statistics.Report) error
	// Invalidate drops every cached report of companyID.
	Invalidate(ctx context.Context, companyID kernel.UUID) error
}
