package observability

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics()

	m.OnClassifyComplete(ctx, "all", 86, time.Millisecond)
	m.OnClassifyComplete(ctx, "all", 86, time.Millisecond)
	m.OnClassifyComplete(ctx, "noble gas", 5, time.Millisecond)
	if got := testutil.ToFloat64(m.classified.WithLabelValues("all")); got != 2 {
		t.Errorf("classify_total{all} = %v, want 2", got)
	}

	m.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	m.OnRenderComplete(ctx, []string{"png"}, time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(m.renders.WithLabelValues("error")); got != 1 {
		t.Errorf("render_total{error} = %v, want 1", got)
	}

	m.OnCacheMiss(ctx, "artifact")
	m.OnCacheSet(ctx, "artifact", 100)
	m.OnCacheHit(ctx, "artifact")
	m.OnCacheHit(ctx, "artifact")
	if got := testutil.ToFloat64(m.cacheOps.WithLabelValues("artifact", "hit")); got != 2 {
		t.Errorf("cache hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.cacheBytes); got != 100 {
		t.Errorf("cache bytes = %v, want 100", got)
	}

	m.OnRequest(ctx, "GET", "/healthz")
	if got := testutil.ToFloat64(m.inflight); got != 1 {
		t.Errorf("in flight = %v, want 1", got)
	}
	m.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)
	if got := testutil.ToFloat64(m.inflight); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/healthz", "200")); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}

	m.OnError(ctx, "GET", "/api/elements/{symbol}", errors.New("missing"))
	if got := testutil.ToFloat64(m.httpErrors.WithLabelValues("/api/elements/{symbol}")); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.OnCacheHit(context.Background(), "artifact")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, want := range []string{
		`periodic_cache_operations_total{key_type="artifact",result="hit"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
