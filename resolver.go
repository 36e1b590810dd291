package ioc

import (
	"context"

	"github.com/MunMunMiao/dn-ioc/internal/engine"
)

// Resolver resolves provider references against its injection context.
// It is handed to factories and to RunInInjectionContext callbacks. The
// zero Resolver is bound to nothing and fails every resolution with
// ErrCodeNoActiveScope.
//
// A resolver kept past the construction that received it remains
// usable: it resolves as a fresh top-level call in the same context,
// without the original call chain's cycle state.
type Resolver struct {
	eng *engine.Resolver
}

func (r Resolver) ResolveAny(ctx context.Context, ref AnyRef) (any, error) {
	if ref == nil {
		return nil, errNilProviderRef()
	}
	p := ref.provider()
	if p == nil {
		return nil, errNilProviderRef()
	}
	return r.eng.Resolve(ctx, p)
}

func Resolve[T any](ctx context.Context, r Resolver, ref *Ref[T]) (T, error) {
	var zero T
	v, err := r.ResolveAny(ctx, ref)
	if err != nil {
		return zero, err
	}

	// The factory output is always T; a nil interface result asserts to
	// the zero value.
	typed, _ := v.(T)
	return typed, nil
}

func MustResolve[T any](ctx context.Context, r Resolver, ref *Ref[T]) T {
	v, err := Resolve(ctx, r, ref)
	if err != nil {
		panic(err)
	}
	return v
}

func TryResolve[T any](ctx context.Context, r Resolver, ref *Ref[T]) (T, bool) {
	v, err := Resolve(ctx, r, ref)
	return v, err == nil
}

type Optional[T any] struct {
	value   T
	present bool
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) Value() T {
	return o.value
}

func (o Optional[T]) Present() bool {
	return o.present
}

func (o Optional[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

func (o Optional[T]) OrElseFunc(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// ResolveOptional is the absent-sentinel variant of Resolve: any
// resolution failure, including an unbound resolver, yields None.
func ResolveOptional[T any](ctx context.Context, r Resolver, ref *Ref[T]) Optional[T] {
	v, err := Resolve(ctx, r, ref)
	if err != nil {
		return None[T]()
	}
	return Some(v)
}
