// Package commands contains business operations that modify system state.
// Every command is validated on construction, resolves its actor inside the
// transaction and commits all changes of one operation atomically, cascades included.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	StatisticsRepoFactory interface {
		StatisticsRepository() ports.StatisticsRepository
	}

	// LifecycleUoW covers task and route changes together with their cascades.
	LifecycleUoW interface {
		TxManager
		TaskRepoFactory
		RouteRepoFactory
		UserRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW spans every repository. Used by cascade deletes, documents, messages
	// and statistics snapshots.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _ = uow.MessageRepository().DeleteByTask(ctx, taskID)
	//   _ = uow.TaskRepository().Delete(ctx, taskID)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TaskRepoFactory
		RouteRepoFactory
		UserRepoFactory
		CompanyRepoFactory
		DocumentRepoFactory
		MessageRepoFactory
		StatisticsRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
