// Package ioc provides a registry-free, type-safe dependency resolution
// runtime for Go 1.25+.
//
// There is no container to register into. A provider is a first-class
// value created by Provide; holding the reference is what grants access
// to the dependency. Construction is fully lazy, shared instances live
// in a process-wide cache, and resolution happens inside injection
// contexts that can locally substitute one provider for another.
//
// # Quick Start
//
// Declare providers as package-level values and resolve them inside an
// injection context:
//
//	var Config = ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*AppConfig, error) {
//	    return &AppConfig{Port: 8080}, nil
//	}, ioc.WithName("config"))
//
//	var Server = ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*HTTPServer, error) {
//	    cfg, err := ioc.Resolve(ctx, r, Config)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &HTTPServer{config: cfg}, nil
//	}, ioc.WithName("server"))
//
//	srv, err := ioc.RunInInjectionContext(ctx, func(ctx context.Context, r ioc.Resolver) (*HTTPServer, error) {
//	    return ioc.Resolve(ctx, r, Server)
//	})
//
// # Providers
//
// Providers are immutable descriptors pairing a factory with resolution
// metadata. The factory receives a context and a Resolver for reaching
// its own dependencies:
//
//	ioc.Provide[T](factory)          // Declare a provider
//	ioc.ProvideValue[T](value)       // Wrap an existing value
//
// Identity is reference identity. Two Provide calls with the same
// factory produce two unrelated dependencies, each cached on its own:
//
//	a := ioc.Provide(newThing)
//	b := ioc.Provide(newThing)
//	// a and b never share an instance.
//
// Use IsProviderRef to test whether an arbitrary value is a provider
// reference:
//
//	ioc.IsProviderRef(Config)  // true
//	ioc.IsProviderRef(42)      // false
//
// # Resolution
//
// Resolution requires a Resolver, obtained from RunInInjectionContext
// or inside a factory. The zero Resolver is bound to nothing and fails
// with ErrCodeNoActiveScope:
//
//	v, err := ioc.Resolve(ctx, r, ref)     // Returns value and error
//	v := ioc.MustResolve(ctx, r, ref)      // Panics on error
//	v, ok := ioc.TryResolve(ctx, r, ref)   // Error collapsed to a bool
//
// A resolver captured during construction stays valid after the factory
// returns. Later calls on it behave as fresh top-level resolutions in
// the same context: the override table is retained, the old call chain
// is not.
//
// Cycles are detected per call chain. A provider that resolves itself,
// directly or through intermediaries, gets ErrCodeCircularDependency
// naming the chain; sibling branches of a diamond never interfere.
//
// # Modes
//
// Every provider is either shared (the default) or scoped:
//
//	ioc.Provide(newPool)                               // shared
//	ioc.Provide(newBuffer, ioc.WithMode(ioc.Scoped))   // scoped, fresh per resolution
//
// Shared providers construct once per process and serve the same
// instance to every dependent, across injection contexts. Scoped
// providers run their factory on every resolution and never touch the
// cache.
//
// # Cache Semantics
//
// The global instance cache is keyed by provider reference and is
// strictly first-write-wins: whichever resolution completes a shared
// provider first installs the instance every later resolution receives,
// regardless of which injection context or override table produced it.
// Code relying on cached state must tolerate the instance having been
// constructed under any context that could race to be first.
//
// Only a provider resolved as itself populates the cache. When an
// override substitutes provider B for a request of provider A, the
// instance produced through that substitution is handed to the caller
// but is not installed under B. A later direct resolution of B
// constructs and caches its own instance.
//
// Failures never poison the cache. A factory error or panic evicts the
// pending entry, the error propagates to the resolutions that were
// waiting, and the next resolution retries construction from scratch.
//
// ResetGlobalCache drops all entries without running destroy hooks.
// In-flight constructions are unaffected: they complete against their
// original entries, which are simply no longer reachable.
//
// # Local Overrides
//
// A provider may carry overrides that are visible only while its own
// factory executes:
//
//	var MockStore = ioc.Provide(newMockStore, ioc.WithOverrides(Store))
//
//	var Handler = ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*Handler, error) {
//	    s, err := ioc.Resolve(ctx, r, Store)  // yields the mock here
//	    ...
//	}, ioc.WithLocalOverrides(MockStore))
//
// WithOverrides names the provider being substituted; without it a
// provider targets itself and the entry is inert. Override tables
// nest: the innermost table declaring a target wins. Substitution
// applies once per lookup; the substitute is not re-looked-up, so
// entries targeting a substitute never chain. Inside the substitute's
// own factory the table still maps the target to the substitute, so
// resolving the target from there is rejected as circular.
//
// Overrides are invisible outside the factory that declared them.
// Sibling dependencies and the surrounding context resolve the original
// provider.
//
// # Override Sets
//
// Group related overrides for reuse:
//
//	var TestDoubles = ioc.NewOverrideSet("test-doubles").
//	    Add(MockStore).
//	    Add(MockClock)
//
//	var PaymentsDoubles = ioc.NewOverrideSet("payments").
//	    Include(TestDoubles).
//	    Add(FakeGateway)
//
//	ioc.Provide(newCheckout, ioc.WithLocalOverrideSet(PaymentsDoubles))
//
// A set's own entries shadow those of included sets when both target
// the same provider.
//
// # Optional Dependencies
//
// ResolveOptional collapses every failure into an absent value:
//
//	opt := ioc.ResolveOptional(ctx, r, Cache)
//	if opt.Present() {
//	    cache := opt.Value()
//	}
//
//	cache := ioc.ResolveOptional(ctx, r, Cache).OrElse(defaultCache)
//
//	cache := ioc.ResolveOptional(ctx, r, Cache).OrElseFunc(func() *Cache {
//	    return NewDefaultCache()
//	})
//
// # Interface Binding
//
// Expose a concrete provider behind an interface:
//
//	var PostgresRepo = ioc.Provide(newPostgresRepo)
//	var Repo = ioc.As[UserRepository](PostgresRepo)
//
// Resolving the bound reference resolves the concrete provider, so a
// shared implementation stays a single instance whether reached through
// the interface or directly.
//
// # Concurrency
//
// All API functions are safe for concurrent use. Concurrent resolutions
// of the same shared provider are single-flight: one caller runs the
// factory, the rest wait for its outcome. Cancelling a waiter's context
// abandons the wait only; the construction itself keeps running and its
// result remains valid for everyone else.
//
// If the constructing factory panics, the panic propagates on the
// owning call chain, while waiters receive ErrCodeConstructionPanic.
//
// # Lifecycle
//
// Shared instances can register teardown logic:
//
//	var DB = ioc.Provide(newDB, ioc.WithOnDestroy(func(ctx context.Context, db *sql.DB) error {
//	    return db.Close()
//	}))
//
//	err := ioc.DrainGlobalCache(ctx)
//
// DrainGlobalCache empties the cache and runs hooks for completed
// instances, most recently completed first, so dependents are torn down
// before the dependencies they were built from. Hook failures are
// joined into the returned error; a failed hook never stops the drain.
//
// # Health Checks
//
// Cached shared instances can implement a health check interface:
//
//	type Database struct{}
//	func (d *Database) HealthCheck(ctx context.Context) error { return d.Ping(ctx) }
//
// Check health status:
//
//	err := ioc.Live(ctx)            // Fails if any HealthChecker returns error
//	reports := ioc.Health(ctx)      // Detailed reports with latency
//
// # Debug Visualization
//
// Inspect the global cache for debugging:
//
//	ioc.PrintGlobalCache()            // ASCII table to stdout
//	output := ioc.SprintGlobalCache()
//	info := ioc.GlobalCacheInfo()     // Structured CacheInfo
//
// # Metrics Observers
//
// Observe resolutions for metrics integration:
//
//	result, err := ioc.RunInInjectionContext(ctx, run,
//	    ioc.WithResolveObserver(func(name string, d time.Duration, err error) {
//	        metrics.RecordResolve(name, d, err)
//	    }),
//	    ioc.WithLogger(logger),
//	)
//
// WithLogger routes the runtime's slog debug output; it defaults to
// slog.Default().
//
// # Testing
//
// The ioctest package isolates the global cache per test and provides
// resolution helpers:
//
//	func TestCheckout(t *testing.T) {
//	    ioctest.Isolate(t)
//	    got := ioctest.Run(t, func(ctx context.Context, r ioc.Resolver) (*Checkout, error) {
//	        return ioc.Resolve(ctx, r, Checkout)
//	    })
//	    ...
//	}
package ioc
