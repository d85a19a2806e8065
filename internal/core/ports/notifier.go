package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// Notifier is told about every committed status transition, once per
// transition. Its result never affects the operation that caused it.
type Notifier interface {
	Notify(ctx context.Context, t kernel.Transition) error
}

// NopNotifier drops every transition.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, kernel.Transition) error { return nil }
