package benchmark

import (
	"context"
	"testing"

	"github.com/samber/do/v2"

	"github.com/MunMunMiao/dn-ioc"
)

func BenchmarkConcurrent_Singleton_Dnioc(b *testing.B) {
	ioc.ResetGlobalCache()
	defer ioc.ResetGlobalCache()

	ref := ioc.ProvideValue(&Config{Host: "localhost", Port: 8080})
	ctx := context.Background()
	r := benchResolver(b)
	if _, err := ioc.Resolve(ctx, r, ref); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = ioc.Resolve(ctx, r, ref)
		}
	})
}

func BenchmarkConcurrent_Singleton_Do(b *testing.B) {
	injector := do.New()
	do.ProvideValue(injector, &Config{Host: "localhost", Port: 8080})
	_ = do.MustInvoke[*Config](injector)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = do.MustInvoke[*Config](injector)
		}
	})
}

func BenchmarkConcurrent_Chain_Dnioc(b *testing.B) {
	ioc.ResetGlobalCache()
	defer ioc.ResetGlobalCache()

	svc := dniocChain()
	ctx := context.Background()
	r := benchResolver(b)
	if _, err := ioc.Resolve(ctx, r, svc); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = ioc.Resolve(ctx, r, svc)
		}
	})
}

func BenchmarkConcurrent_Transient_Dnioc(b *testing.B) {
	ref := ioc.Provide(func(ctx context.Context, r ioc.Resolver) (*Config, error) {
		return &Config{Host: "localhost", Port: 8080}, nil
	}, ioc.WithMode(ioc.Scoped))
	ctx := context.Background()
	r := benchResolver(b)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = ioc.Resolve(ctx, r, ref)
		}
	})
}
