package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle; repositories
// obtained before Begin run outside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	TaskRepository() TaskRepository
	RouteRepository() RouteRepository
	UserRepository() UserRepository
	CompanyRepository() CompanyRepository
	DocumentRepository() DocumentRepository
	MessageRepository() MessageRepository
	StatisticsRepository() StatisticsRepository
}
