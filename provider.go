package ioc

import (
	"context"

	"github.com/MunMunMiao/dn-ioc/internal/engine"
	"github.com/MunMunMiao/dn-ioc/internal/mode"
)

type Factory[T any] func(ctx context.Context, r Resolver) (T, error)

// AnyRef is the type-erased view of a provider reference. Only values
// created by Provide and its variants satisfy it.
type AnyRef interface {
	provider() *engine.Provider
}

// Ref identifies a provider. Identity is reference identity: two calls
// to Provide with the same factory yield two distinct dependencies.
type Ref[T any] struct {
	p *engine.Provider
}

func (r *Ref[T]) provider() *engine.Provider {
	if r == nil {
		return nil
	}
	return r.p
}

func (r *Ref[T]) Name() string {
	return r.p.DisplayName()
}

func IsProviderRef(v any) bool {
	_, ok := v.(AnyRef)
	return ok
}

type ProviderOption func(*providerConfig)

type providerConfig struct {
	name    string
	mode    mode.Mode
	target  AnyRef
	locals  []AnyRef
	destroy engine.DestroyHook
}

// Provide declares how to construct a value. The factory never runs
// here; construction is fully lazy and happens at resolution time.
func Provide[T any](factory Factory[T], opts ...ProviderOption) *Ref[T] {
	cfg := &providerConfig{mode: mode.Shared}
	for _, opt := range opts {
		opt(cfg)
	}

	wrapped := func(ctx context.Context, res *engine.Resolver) (any, error) {
		return factory(ctx, Resolver{eng: res})
	}

	return &Ref[T]{
		p: engine.NewProvider(
			wrapped, engine.ProviderOpts{
				Mode:    cfg.mode,
				Name:    cfg.name,
				Target:  refProvider(cfg.target),
				Locals:  refProviders(cfg.locals),
				Destroy: cfg.destroy,
			},
		),
	}
}

func ProvideValue[T any](value T, opts ...ProviderOption) *Ref[T] {
	return Provide(
		func(ctx context.Context, r Resolver) (T, error) {
			return value, nil
		}, opts...,
	)
}

func refProvider(ref AnyRef) *engine.Provider {
	if ref == nil {
		return nil
	}
	return ref.provider()
}

func refProviders(refs []AnyRef) []*engine.Provider {
	if len(refs) == 0 {
		return nil
	}
	out := make([]*engine.Provider, 0, len(refs))
	for _, ref := range refs {
		if p := refProvider(ref); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func WithName(name string) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.name = name
	}
}

func WithMode(m Mode) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.mode = m
	}
}

// WithOverrides declares the provider this one substitutes when listed
// in another provider's local overrides. Without it the provider
// targets itself.
func WithOverrides(target AnyRef) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.target = target
	}
}

// WithLocalOverrides attaches providers visible only while this
// provider's own factory executes. A later entry for the same target
// shadows an earlier one.
func WithLocalOverrides(refs ...AnyRef) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.locals = append(cfg.locals, refs...)
	}
}

func WithLocalOverrideSet(set *OverrideSet) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.locals = append(cfg.locals, set.Refs()...)
	}
}

// WithOnDestroy registers a hook run by DrainGlobalCache against the
// cached shared instance.
func WithOnDestroy[T any](hook func(ctx context.Context, v T) error) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.destroy = func(ctx context.Context, v any) error {
			typed, ok := v.(T)
			if !ok {
				return nil
			}
			return hook(ctx, typed)
		}
	}
}
