package engine

import (
	"context"

	"github.com/MunMunMiao/dn-ioc/internal/mode"
)

type Factory func(ctx context.Context, res *Resolver) (any, error)

type DestroyHook func(ctx context.Context, v any) error

// Provider is an immutable construction descriptor. Identity is pointer
// identity: two providers are the same dependency only if they are the
// same *Provider.
type Provider struct {
	factory Factory
	mode    mode.Mode
	name    string
	target  *Provider
	locals  []*Provider
	destroy DestroyHook
}

type ProviderOpts struct {
	Mode    mode.Mode
	Name    string
	Target  *Provider
	Locals  []*Provider
	Destroy DestroyHook
}

func NewProvider(factory Factory, opts ProviderOpts) *Provider {
	p := &Provider{
		factory: factory,
		mode:    opts.Mode,
		name:    opts.Name,
		target:  opts.Target,
		destroy: opts.Destroy,
	}
	if len(opts.Locals) > 0 {
		p.locals = make([]*Provider, len(opts.Locals))
		copy(p.locals, opts.Locals)
	}
	return p
}

func (p *Provider) Mode() mode.Mode {
	return p.mode
}

func (p *Provider) DisplayName() string {
	if p.name != "" {
		return p.name
	}
	return "anonymous"
}

// Target is the provider this one substitutes inside an override scope,
// itself when it was declared without an explicit target.
func (p *Provider) Target() *Provider {
	if p.target != nil {
		return p.target
	}
	return p
}

func (p *Provider) Destroy() DestroyHook {
	return p.destroy
}
