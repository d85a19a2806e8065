package commands

import (
	"context"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/policy"
)

// loadLinks resolves the task and route a document points at.
func loadLinks(ctx context.Context, repos taskGraph, links document.Links) (policy.DocumentLinks, error) {
	var out policy.DocumentLinks
	if links.TaskID != nil {
		t, err := repos.TaskRepository().Get(ctx, *links.TaskID)
		if err != nil {
			return policy.DocumentLinks{}, err
		}
		out.Task = t
	}
	if links.RouteID != nil {
		r, err := repos.RouteRepository().Get(ctx, *links.RouteID)
		if err != nil {
			return policy.DocumentLinks{}, err
		}
		out.Route = r
	}
	return out, nil
}
