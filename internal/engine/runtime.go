package engine

import (
	"log/slog"
	"time"
)

type ResolveHook func(name string, duration time.Duration, err error)

// Runtime carries the per-root-context configuration: logger and
// resolution observers. The instance cache is deliberately not here; it
// is process-wide state shared by every runtime.
type Runtime struct {
	logger    *slog.Logger
	onResolve []ResolveHook
}

func NewRuntime(logger *slog.Logger, onResolve []ResolveHook) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime{
		logger:    logger,
		onResolve: onResolve,
	}
}

func (rt *Runtime) observeResolve(name string, duration time.Duration, err error) {
	for _, hook := range rt.onResolve {
		hook(name, duration, err)
	}
}
