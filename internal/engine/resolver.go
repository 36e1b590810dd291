package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MunMunMiao/dn-ioc/internal/cache"
	"github.com/MunMunMiao/dn-ioc/internal/mode"
	"github.com/MunMunMiao/dn-ioc/internal/stack"
)

// Resolver is the capability handed to factories and context runners.
// It binds a context to the call stack of providers currently under
// construction on this path. Stacks are derived per call, never shared
// between sibling resolutions.
type Resolver struct {
	ctx    *Context
	stack  stack.Stack[*Provider]
	active atomic.Bool
}

func NewRootResolver(c *Context) *Resolver {
	r := &Resolver{ctx: c}
	r.active.Store(true)
	return r
}

func (r *Resolver) Resolve(ctx context.Context, p *Provider) (any, error) {
	if r == nil || r.ctx == nil {
		return nil, errNoActiveScope()
	}
	if p == nil {
		return nil, NewError(ErrCodeUnknown, "nil provider", nil)
	}

	start := time.Now()
	v, err := r.resolve(ctx, p)
	r.ctx.runtime.observeResolve(p.DisplayName(), time.Since(start), err)
	return v, err
}

func (r *Resolver) resolve(ctx context.Context, req *Provider) (any, error) {
	p := r.ctx.effective(req)
	rt := r.ctx.runtime

	// A resolver kept past its owning construction stops contributing to
	// that construction's cycle state; it resolves as a fresh top-level
	// call with the same context.
	stk := r.stack
	if !r.active.Load() {
		stk = stack.Stack[*Provider]{}
	}

	if stk.Contains(p) {
		chain := displayChain(stk, p)
		rt.logger.Debug("circular dependency rejected", "provider", p.DisplayName())
		return nil, errCircularDependency(p.DisplayName(), chain)
	}

	var entry *cache.Entry
	var owner bool
	if p.Mode() == mode.Shared {
		// An instance produced through an override substitution never
		// enters the global cache; only resolving a provider as itself may
		// install an entry. Existing entries are honored either way.
		if p == req {
			entry, owner = global.Begin(p)
		} else if e, ok := global.Get(p); ok {
			entry = e
		}
		if entry != nil && !owner {
			rt.logger.Debug("cache hit", "provider", p.DisplayName())
			return entry.Await(ctx)
		}
	}

	fctx := r.ctx
	if len(p.locals) > 0 {
		fctx = r.ctx.newChild(p.locals)
		rt.logger.Debug("override scope opened", "provider", p.DisplayName(), "overrides", len(p.locals))
	}

	child := &Resolver{ctx: fctx, stack: stk.Push(p)}
	child.active.Store(true)

	defer func() {
		child.deactivate()
		if rec := recover(); rec != nil {
			if owner {
				global.Evict(p, entry)
				entry.Reject(errConstructionPanic(p.DisplayName(), rec))
			}
			panic(rec)
		}
	}()

	v, err := p.factory(ctx, child)
	if err != nil {
		if owner {
			// Evict so the next resolution retries from scratch. Evict
			// leaves the entry alone when a reset already replaced it.
			global.Evict(p, entry)
			entry.Reject(err)
			rt.logger.Debug("construction failed, entry evicted", "provider", p.DisplayName())
		}
		return nil, err
	}

	if owner {
		entry.Fulfill(v)
		rt.logger.Debug("cache store", "provider", p.DisplayName())
	}
	return v, nil
}

func (r *Resolver) deactivate() {
	r.active.Store(false)
}

func displayChain(stk stack.Stack[*Provider], p *Provider) []string {
	values := stk.Values()
	chain := make([]string, 0, len(values)+1)
	for _, q := range values {
		chain = append(chain, q.DisplayName())
	}
	return append(chain, p.DisplayName())
}
