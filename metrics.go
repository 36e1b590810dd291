package ioc

import "github.com/MunMunMiao/dn-ioc/internal/engine"

// ResolveHook observes every resolution made under a context created
// with WithResolveObserver, including cache hits and failures.
type ResolveHook = engine.ResolveHook
