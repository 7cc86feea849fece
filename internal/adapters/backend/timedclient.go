package backend

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"fitlab/internal/adapters/http/perf"
)

// DefaultSlowCallMs is the default threshold for slow backend call warnings.
const DefaultSlowCallMs = 500

var slowCallMs int64
var slowCallOnce sync.Once

func getSlowCallThreshold() float64 {
	slowCallOnce.Do(func() {
		ms := DefaultSlowCallMs
		if v := os.Getenv("FITLAB_SLOW_CALL_MS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				ms = n
			}
		}
		atomic.StoreInt64(&slowCallMs, int64(ms))
	})
	return float64(atomic.LoadInt64(&slowCallMs))
}

// TimedClient wraps a Doer to log slow backend calls and record timings
// to a collector. Satisfies Doer so it can back any store constructor.
type TimedClient struct {
	inner     Doer
	collector *perf.Collector
	threshold float64
}

// Compile-time check that *TimedClient satisfies Doer.
var _ Doer = (*TimedClient)(nil)

// NewTimedClient wraps a Doer with timing instrumentation.
// PRE: inner is non-nil
// POST: Returns a TimedClient that logs slow calls and records to collector
func NewTimedClient(inner Doer, collector *perf.Collector) *TimedClient {
	return &TimedClient{
		inner:     inner,
		collector: collector,
		threshold: getSlowCallThreshold(),
	}
}

// Do forwards to the wrapped Doer and records the call duration.
// POST: timing recorded to collector, slow calls logged
func (t *TimedClient) Do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()
	err := t.inner.Do(ctx, method, path, body, out)
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0

	if durationMs >= t.threshold {
		slog.Warn("slow_backend_call",
			"method", method,
			"path", path,
			"duration_ms", durationMs,
		)
	} else {
		slog.Debug("backend_call",
			"method", method,
			"path", path,
			"duration_ms", durationMs,
		)
	}

	if t.collector != nil {
		t.collector.Record(perf.Entry{
			Kind:       perf.KindBackend,
			Path:       method + " " + path,
			DurationMs: durationMs,
			Timestamp:  start,
		})
	}
	return err
}
