package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// retryOnConflict runs op, and runs it once more on fresh state when it fails
// with errs.ErrConflict. A second conflict is returned to the caller.
func retryOnConflict(ctx context.Context, op func(ctx context.Context) error) error {
	err := op(ctx)
	if errors.Is(err, errs.ErrConflict) {
		err = op(ctx)
	}
	return err
}

// publish hands every committed transition to the notifier exactly once.
// Notification failures never affect the operation.
func publish(ctx context.Context, notifier ports.Notifier, transitions []kernel.Transition) {
	for _, t := range transitions {
		_ = notifier.Notify(ctx, t)
	}
}

// invalidateReports drops the cached reports of every given company after a
// committed write. A nil cache is a no-op and cache failures never affect the operation.
func invalidateReports(ctx context.Context, cache ports.ReportCache, companyIDs ...kernel.UUID) {
	if cache == nil {
		return
	}
	seen := make(map[kernel.UUID]struct{}, len(companyIDs))
	for _, id := range companyIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		_ = cache.Invalidate(ctx, id)
	}
}

// companiesOf lists the company of every transition.
func companiesOf(transitions []kernel.Transition) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(transitions))
	for _, t := range transitions {
		ids = append(ids, t.CompanyID)
	}
	return ids
}

func orNop(n ports.Notifier) ports.Notifier {
	if n == nil {
		return ports.NopNotifier{}
	}
	return n
}

func touches(transitions []kernel.Transition, entity string) bool {
	for _, t := range transitions {
		if t.Entity == entity {
			return true
		}
	}
	return false
}

// linkedRoute returns the route of taskID, or nil when the task has none.
func linkedRoute(ctx context.Context, repo ports.RouteRepository, taskID kernel.UUID) (*route.Route, error) {
	r, err := repo.GetByTask(ctx, taskID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return r, err
}

// referencedUser loads a user named by a command. A missing user is reported
// as an invalid field, after the actor has already been authorized.
func referencedUser(ctx context.Context, users ports.UserRepository, field string, id kernel.UUID) (*org.User, error) {
	u, err := users.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return u, err
}

// linkedTask returns the task r is attached to, or nil.
func linkedTask(ctx context.Context, repo ports.TaskRepository, r *route.Route) (*task.Task, error) {
	if r.TaskID() == nil {
		return nil, nil
	}
	return repo.Get(ctx, *r.TaskID())
}

func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func validateOptionalID(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return validateID(name, *id)
}
