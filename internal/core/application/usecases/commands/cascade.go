package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// taskGraph is what a task owns: its route, documents and messages.
type taskGraph interface {
	TaskRepoFactory
	RouteRepoFactory
	DocumentRepoFactory
	MessageRepoFactory
}

// deleteTaskGraph removes a task together with everything it owns, in the
// order Messages, Documents, Route (with its documents), Task. The caller
// owns the transaction.
func deleteTaskGraph(ctx context.Context, repos taskGraph, taskID kernel.UUID) error {
	if err := repos.MessageRepository().DeleteByTask(ctx, taskID); err != nil {
		return err
	}
	if err := repos.DocumentRepository().DeleteByTask(ctx, taskID); err != nil {
		return err
	}

	r, err := linkedRoute(ctx, repos.RouteRepository(), taskID)
	if err != nil {
		return err
	}
	if r != nil {
		if err = deleteRouteGraph(ctx, repos, r.ID()); err != nil {
			return err
		}
	}

	return repos.TaskRepository().Delete(ctx, taskID)
}

// deleteRouteGraph removes a route and the documents attached to it.
func deleteRouteGraph(ctx context.Context, repos taskGraph, routeID kernel.UUID) error {
	if err := repos.DocumentRepository().DeleteByRoute(ctx, routeID); err != nil {
		return err
	}
	return repos.RouteRepository().Delete(ctx, routeID)
}
