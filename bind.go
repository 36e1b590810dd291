package ioc

import (
	"context"
	"fmt"
)

// As derives a provider resolving ref as interface I. The underlying
// instance still follows ref's mode: a shared ref yields the same
// instance through every binding of it.
func As[I, T any](ref *Ref[T], opts ...ProviderOption) *Ref[I] {
	return Provide(
		func(ctx context.Context, r Resolver) (I, error) {
			var zero I
			v, err := Resolve(ctx, r, ref)
			if err != nil {
				return zero, err
			}
			iface, ok := any(v).(I)
			if !ok {
				return zero, errTypeMismatch(fmt.Sprintf("%T does not satisfy the bound interface", v))
			}
			return iface, nil
		}, opts...,
	)
}
