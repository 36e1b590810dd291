package ioc

import "github.com/MunMunMiao/dn-ioc/internal/mode"

type Mode = mode.Mode

const (
	// Shared providers construct at most once per process; the instance,
	// or its in-flight construction, lives in the global cache.
	Shared = mode.Shared
	// Scoped providers construct a fresh instance on every resolution
	// and are never cached.
	Scoped = mode.Scoped
)
