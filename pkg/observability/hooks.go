// Package observability lets a metrics backend observe classification,
// rendering, cache use and served requests.
//
// Each event category has an interface and a no-op default. The serve
// command installs a backend at startup; libraries only emit events, so they
// never import a metrics backend. [Metrics] is the Prometheus backend.
//
// # Usage
//
//	m := observability.NewMetrics()
//	observability.Register(m)
//	defer observability.Reset()
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, formats)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, formats, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the table pipeline.
type PipelineHooks interface {
	// Classify events. filter is "all" or a category name.
	OnClassifyStart(ctx context.Context, filter string)
	OnClassifyComplete(ctx context.Context, filter string, count int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a finished response.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnError records a handler error reported to the client.
	OnError(ctx context.Context, method, route string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnClassifyStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnClassifyComplete(context.Context, string, int, time.Duration)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// Hooks is implemented by backends that observe every event category, such
// as [Metrics].
type Hooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

// =============================================================================
// Global Hook Registry
// =============================================================================

type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var global = &registry{
	pipeline: NoopPipelineHooks{},
	cache:    NoopCacheHooks{},
	http:     NoopHTTPHooks{},
}

// install stores h in *dst under the registry lock. A nil h is ignored.
func install[T any](dst *T, h T) {
	if any(h) == nil {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	*dst = h
}

func load[T any](src *T) T {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return *src
}

// Register installs h for pipeline, cache and HTTP events. Call it once at
// startup, before serving.
func Register(h Hooks) {
	if h == nil {
		return
	}
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

// SetPipelineHooks installs pipeline hooks.
func SetPipelineHooks(h PipelineHooks) { install(&global.pipeline, h) }

// SetCacheHooks installs cache hooks.
func SetCacheHooks(h CacheHooks) { install(&global.cache, h) }

// SetHTTPHooks installs HTTP hooks.
func SetHTTPHooks(h HTTPHooks) { install(&global.http, h) }

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return load(&global.pipeline) }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return load(&global.cache) }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return load(&global.http) }

// Reset restores the no-op hooks. Tests that install hooks defer it.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.pipeline = NoopPipelineHooks{}
	global.cache = NoopCacheHooks{}
	global.http = NoopHTTPHooks{}
}
