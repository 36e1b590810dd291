package ioc

import (
	"context"
	"sync"
	"time"

	"github.com/MunMunMiao/dn-ioc/internal/engine"
)

type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "up"
	HealthStatusDown HealthStatus = "down"
)

type HealthReport struct {
	Provider string
	Status   HealthStatus
	Error    error
	Latency  time.Duration
}

// HealthChecker is implemented by cached shared instances that want to
// report liveness through Health and Live.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Health checks every completed shared instance in the global cache
// that implements HealthChecker. Checks run concurrently.
func Health(ctx context.Context) []HealthReport {
	snapshot := engine.CacheSnapshot()

	var reports []HealthReport
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, item := range snapshot {
		if !item.Settled {
			continue
		}
		checker, ok := item.Value.(HealthChecker)
		if !ok {
			continue
		}

		wg.Add(1)
		go func(name string, hc HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := hc.HealthCheck(ctx)

			report := HealthReport{
				Provider: name,
				Latency:  time.Since(start),
			}
			if err != nil {
				report.Status = HealthStatusDown
				report.Error = err
			} else {
				report.Status = HealthStatusUp
			}

			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
		}(item.Provider.DisplayName(), checker)
	}

	wg.Wait()
	return reports
}

// Live returns the first failing health check, nil when every checker
// reports up.
func Live(ctx context.Context) error {
	for _, r := range Health(ctx) {
		if r.Status == HealthStatusDown {
			return errHealthCheckFailed(r.Provider, r.Error)
		}
	}
	return nil
}
