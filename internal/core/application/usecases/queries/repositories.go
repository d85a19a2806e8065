package queries

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ReadModel exposes the repositories queries read from. Queries never open
// a transaction; a unit of work that was not begun reads straight from the pool.
type ReadModel interface {
	UserRepository() ports.UserRepository
	TaskRepository() ports.TaskRepository
	RouteRepository() ports.RouteRepository
	DocumentRepository() ports.DocumentRepository
	MessageRepository() ports.MessageRepository
	StatisticsRepository() ports.StatisticsRepository
}

func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
