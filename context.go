package ioc

import (
	"context"
	"log/slog"

	"github.com/MunMunMiao/dn-ioc/internal/engine"
)

type contextConfig struct {
	logger    *slog.Logger
	onResolve []ResolveHook
}

// RunInInjectionContext establishes a fresh root context and invokes fn
// with a resolver bound to it. The resolver stays valid after fn
// returns, so fn may stash it for goroutines it started. Nested calls
// create independent root contexts; shared instances still flow through
// the process-wide cache.
func RunInInjectionContext[T any](
	ctx context.Context,
	fn func(ctx context.Context, r Resolver) (T, error),
	opts ...ContextOption,
) (T, error) {
	cfg := &contextConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	rt := engine.NewRuntime(cfg.logger, cfg.onResolve)
	root := engine.NewRootContext(rt)

	return fn(ctx, Resolver{eng: engine.NewRootResolver(root)})
}
