package ports

import (
	"context"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"
)

// DocumentRepository persists document metadata. File contents live elsewhere.
type DocumentRepository interface {
	Add(ctx context.Context, d *document.Document) error
	Update(ctx context.Context, d *document.Document) error
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)
	Delete(ctx context.Context, id kernel.UUID) error
	DeleteByTask(ctx context.Context, taskID kernel.UUID) error
	DeleteByRoute(ctx context.Context, routeID kernel.UUID) error
	DeleteByCompany(ctx context.Context, companyID kernel.UUID) error
	ListByTask(ctx context.Context, taskID kernel.UUID) ([]*document.Document, error)
}

// MessageRepository persists messages.
type MessageRepository interface {
	Add(ctx context.Context, m *document.Message) error
	Get(ctx context.Context, id kernel.UUID) (*document.Message, error)
	// Update persists the read flag; a message body never changes once sent.
	Update(ctx context.Context, m *document.Message) error
	DeleteByTask(ctx context.Context, taskID kernel.UUID) error
	DeleteByCompany(ctx context.Context, companyID kernel.UUID) error
	ListByTask(ctx context.Context, taskID kernel.UUID) ([]*document.Message, error)
}

// StatisticsRepository stores report snapshots, at most one per company and period.
type StatisticsRepository interface {
	// Add replaces any snapshot stored for the same company and period.
	Add(ctx context.Context, s *statistics.Snapshot) error
	ListByCompany(ctx context.Context, companyID kernel.UUID) ([]*statistics.Snapshot, error)
	DeleteByCompany(ctx context.Context, companyID kernel.UUID) error
}
