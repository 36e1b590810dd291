package ioc

import "log/slog"

type ContextOption func(*contextConfig)

func WithLogger(logger *slog.Logger) ContextOption {
	return func(cfg *contextConfig) {
		cfg.logger = logger
	}
}

func WithResolveObserver(hook ResolveHook) ContextOption {
	return func(cfg *contextConfig) {
		cfg.onResolve = append(cfg.onResolve, hook)
	}
}
