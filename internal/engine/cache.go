package engine

import (
	"context"
	"errors"
	"sort"

	"github.com/MunMunMiao/dn-ioc/internal/cache"
)

// global is the process-wide instance cache for shared-mode providers,
// the only mutable state shared across injection contexts.
var global = cache.NewStore[*Provider]()

func ResetCache() {
	global.Reset()
}

func CacheLen() int {
	return global.Len()
}

type CacheItem struct {
	Provider *Provider
	Value    any
	Settled  bool
	Seq      uint64
}

func CacheSnapshot() []CacheItem {
	items := global.Items()
	out := make([]CacheItem, 0, len(items))
	for _, it := range items {
		ci := CacheItem{Provider: it.Key}
		if it.Entry.Settled() && it.Entry.Err() == nil {
			ci.Settled = true
			ci.Value = it.Entry.Value()
			ci.Seq = it.Entry.Seq()
		}
		out = append(out, ci)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seq != out[j].Seq {
			return out[i].Seq < out[j].Seq
		}
		return out[i].Provider.DisplayName() < out[j].Provider.DisplayName()
	})
	return out
}

// DrainCache clears the cache and runs destroy hooks for completed
// instances, most recently completed first, so dependents are torn down
// before the dependencies they were built from. Pending constructions
// are dropped from the cache without being waited on.
func DrainCache(ctx context.Context) error {
	items := global.Reset()

	type held struct {
		p   *Provider
		v   any
		seq uint64
	}
	done := make([]held, 0, len(items))
	for _, it := range items {
		if !it.Entry.Settled() || it.Entry.Err() != nil {
			continue
		}
		done = append(done, held{p: it.Key, v: it.Entry.Value(), seq: it.Entry.Seq()})
	}
	sort.Slice(done, func(i, j int) bool { return done[i].seq > done[j].seq })

	var errs []error
	for _, h := range done {
		hook := h.p.Destroy()
		if hook == nil {
			continue
		}
		if err := hook(ctx, h.v); err != nil {
			errs = append(errs, errDestroyFailed(h.p.DisplayName(), err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
