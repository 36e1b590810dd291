package engine

// Context is a resolution scope: an override table plus an optional
// parent. A root context has no parent and an empty table; a child is
// created for one factory execution when its provider declares local
// overrides.
type Context struct {
	runtime   *Runtime
	parent    *Context
	overrides map[*Provider]*Provider
}

func NewRootContext(rt *Runtime) *Context {
	return &Context{runtime: rt}
}

// newChild populates the override table from locals, each keyed by its
// declared target. A later local for the same target shadows an earlier
// one.
func (c *Context) newChild(locals []*Provider) *Context {
	table := make(map[*Provider]*Provider, len(locals))
	for _, l := range locals {
		table[l.Target()] = l
	}
	return &Context{
		runtime:   c.runtime,
		parent:    c,
		overrides: table,
	}
}

// effective walks from the current context to the root and returns the
// first override registered for p; the innermost table wins. Without a
// match p resolves as itself. The substitution is applied once: an
// override is not itself re-looked-up.
func (c *Context) effective(p *Provider) *Provider {
	for cur := c; cur != nil; cur = cur.parent {
		if o, ok := cur.overrides[p]; ok {
			return o
		}
	}
	return p
}
