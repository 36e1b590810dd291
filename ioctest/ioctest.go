// Package ioctest provides helpers for testing code that resolves
// dependencies through the ioc runtime.
package ioctest

import (
	"context"

	"github.com/MunMunMiao/dn-ioc"
)

// TB is the subset of testing.TB used by the helpers.
type TB interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

// Isolate resets the global instance cache now and again when the test
// finishes, so cached shared instances never leak between tests.
//
// The cache is process-wide, so tests calling Isolate must not run in
// parallel with tests that resolve shared providers.
func Isolate(tb TB) {
	tb.Helper()

	ioc.ResetGlobalCache()
	tb.Cleanup(ioc.ResetGlobalCache)
}

// Run executes fn inside a fresh injection context and fails the test
// on error.
func Run[T any](tb TB, fn func(ctx context.Context, r ioc.Resolver) (T, error), opts ...ioc.ContextOption) T {
	tb.Helper()

	v, err := ioc.RunInInjectionContext(context.Background(), fn, opts...)
	if err != nil {
		tb.Fatalf("failed to run injection context: %v", err)
	}
	return v
}

// RunWithOverrides executes fn with the given overrides active, so fn
// resolves substitutes wherever an override targets a provider it asks
// for. The overrides are scoped to this call.
func RunWithOverrides[T any](tb TB, overrides []ioc.AnyRef, fn func(ctx context.Context, r ioc.Resolver) (T, error)) T {
	tb.Helper()

	scope := ioc.Provide(
		fn,
		ioc.WithMode(ioc.Scoped),
		ioc.WithLocalOverrides(overrides...),
	)

	v, err := ioc.RunInInjectionContext(
		context.Background(),
		func(ctx context.Context, r ioc.Resolver) (T, error) {
			return ioc.Resolve(ctx, r, scope)
		},
	)
	if err != nil {
		tb.Fatalf("failed to run with overrides: %v", err)
	}
	return v
}

// MustResolve resolves ref and fails the test on error.
func MustResolve[T any](tb TB, ctx context.Context, r ioc.Resolver, ref *ioc.Ref[T]) T {
	tb.Helper()

	v, err := ioc.Resolve(ctx, r, ref)
	if err != nil {
		tb.Fatalf("failed to resolve %s: %v", ref.Name(), err)
	}
	return v
}

// MustDrain drains the global cache and fails the test if any destroy
// hook errors.
func MustDrain(tb TB, ctx context.Context) {
	tb.Helper()

	if err := ioc.DrainGlobalCache(ctx); err != nil {
		tb.Fatalf("failed to drain global cache: %v", err)
	}
}
