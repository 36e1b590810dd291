package ioc_test

import (
	"context"
	"testing"

	"github.com/MunMunMiao/dn-ioc"
)

type benchService struct {
	id   int
	next *benchService
}

// benchResolver returns a resolver bound to a fresh root context. The
// resolver stays valid after the runner returns.
func benchResolver(b *testing.B) ioc.Resolver {
	b.Helper()

	var r ioc.Resolver
	_, err := ioc.RunInInjectionContext(
		context.Background(),
		func(ctx context.Context, rr ioc.Resolver) (struct{}, error) {
			r = rr
			return struct{}{}, nil
		},
	)
	if err != nil {
		b.Fatal(err)
	}
	return r
}

func BenchmarkResolve_SharedCached(b *testing.B) {
	ioc.ResetGlobalCache()
	defer ioc.ResetGlobalCache()
	b.ReportAllocs()

	ref := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return &benchService{}, nil
	})

	ctx := context.Background()
	r := benchResolver(b)
	if _, err := ioc.Resolve(ctx, r, ref); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ioc.Resolve(ctx, r, ref); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve_SharedCached_Parallel(b *testing.B) {
	ioc.ResetGlobalCache()
	defer ioc.ResetGlobalCache()
	b.ReportAllocs()

	ref := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return &benchService{}, nil
	})

	ctx := context.Background()
	r := benchResolver(b)
	if _, err := ioc.Resolve(ctx, r, ref); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := ioc.Resolve(ctx, r, ref); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkResolve_ScopedConstruct(b *testing.B) {
	b.ReportAllocs()

	ref := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return &benchService{}, nil
	}, ioc.WithMode(ioc.Scoped))

	ctx := context.Background()
	r := benchResolver(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ioc.Resolve(ctx, r, ref); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkScopedChain(b *testing.B, depth int) {
	b.ReportAllocs()

	refs := make([]*ioc.Ref[*benchService], depth)
	for j := 0; j < depth; j++ {
		idx := j
		var dep *ioc.Ref[*benchService]
		if j > 0 {
			dep = refs[j-1]
		}
		refs[j] = ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
			svc := &benchService{id: idx}
			if dep != nil {
				next, err := ioc.Resolve(ctx, r, dep)
				if err != nil {
					return nil, err
				}
				svc.next = next
			}
			return svc, nil
		}, ioc.WithMode(ioc.Scoped))
	}

	ctx := context.Background()
	r := benchResolver(b)
	top := refs[depth-1]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ioc.Resolve(ctx, r, top); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve_ScopedChain5(b *testing.B) {
	benchmarkScopedChain(b, 5)
}

func BenchmarkResolve_ScopedChain10(b *testing.B) {
	benchmarkScopedChain(b, 10)
}

func benchmarkColdSharedChain(b *testing.B, depth int) {
	b.ReportAllocs()

	refs := make([]*ioc.Ref[*benchService], depth)
	for j := 0; j < depth; j++ {
		idx := j
		var dep *ioc.Ref[*benchService]
		if j > 0 {
			dep = refs[j-1]
		}
		refs[j] = ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
			svc := &benchService{id: idx}
			if dep != nil {
				next, err := ioc.Resolve(ctx, r, dep)
				if err != nil {
					return nil, err
				}
				svc.next = next
			}
			return svc, nil
		})
	}

	ctx := context.Background()
	r := benchResolver(b)
	top := refs[depth-1]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ioc.ResetGlobalCache()
		b.StartTimer()
		if _, err := ioc.Resolve(ctx, r, top); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	ioc.ResetGlobalCache()
}

func BenchmarkResolve_ColdSharedChain5(b *testing.B) {
	benchmarkColdSharedChain(b, 5)
}

func BenchmarkResolve_ColdSharedChain10(b *testing.B) {
	benchmarkColdSharedChain(b, 10)
}

func BenchmarkResolve_WithLocalOverride(b *testing.B) {
	b.ReportAllocs()

	target := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return &benchService{id: 1}, nil
	})
	mock := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return &benchService{id: 2}, nil
	}, ioc.WithOverrides(target))
	wrapper := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return ioc.Resolve(ctx, r, target)
	}, ioc.WithLocalOverrides(mock), ioc.WithMode(ioc.Scoped))

	ctx := context.Background()
	r := benchResolver(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ioc.Resolve(ctx, r, wrapper); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProvide(b *testing.B) {
	b.ReportAllocs()

	factory := func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return &benchService{}, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ioc.Provide(factory)
	}
}

func BenchmarkRunInInjectionContext(b *testing.B) {
	ioc.ResetGlobalCache()
	defer ioc.ResetGlobalCache()
	b.ReportAllocs()

	ref := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
		return &benchService{}, nil
	})

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ioc.RunInInjectionContext(ctx, func(ctx context.Context, r ioc.Resolver) (*benchService, error) {
			return ioc.Resolve(ctx, r, ref)
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}
