package application

import (
	"context"
	"log/slog"
)

// bestEffort runs a side effect whose failure must not abort the caller.
// The error is logged and dropped.
func bestEffort(ctx context.Context, step string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		slog.WarnContext(ctx, "best-effort step failed", "step", step, "error", err)
	}
}

// bestEffortAsync is bestEffort in its own goroutine, detached from ctx cancellation.
func bestEffortAsync(ctx context.Context, step string, fn func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	go bestEffort(ctx, step, fn)
}
