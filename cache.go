package ioc

import (
	"context"

	"github.com/MunMunMiao/dn-ioc/internal/engine"
)

// ResetGlobalCache drops every cached and in-flight shared instance.
// Intended for test isolation. In-flight constructions keep running and
// settle their evicted entries, so callers already awaiting one still
// observe its outcome.
func ResetGlobalCache() {
	engine.ResetCache()
}

// DrainGlobalCache clears the cache like ResetGlobalCache and runs the
// WithOnDestroy hooks of completed shared instances, most recently
// completed first, so dependents are torn down before the dependencies
// they were built from. Hook failures are joined into the returned
// error; the drain itself always completes.
func DrainGlobalCache(ctx context.Context) error {
	return engine.DrainCache(ctx)
}
