package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

// countingHooks counts every event it receives.
type countingHooks struct {
	NoopPipelineHooks
	NoopCacheHooks
	NoopHTTPHooks

	mu     sync.Mutex
	events int
}

func (h *countingHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	h.events++
	h.mu.Unlock()
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestRegister(t *testing.T) {
	t.Cleanup(Reset)
	h := &countingHooks{}
	Register(h)

	if Pipeline() != PipelineHooks(h) || Cache() != CacheHooks(h) || HTTP() != HTTPHooks(h) {
		t.Fatal("Register should install h for every category")
	}

	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore the no-op cache hooks")
	}
}

func TestSetNilIsIgnored(t *testing.T) {
	t.Cleanup(Reset)
	h := &countingHooks{}
	Register(h)

	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)
	Register(nil)

	if Cache() != CacheHooks(h) {
		t.Error("nil hooks should not replace installed hooks")
	}
}

func TestConcurrentEmit(t *testing.T) {
	t.Cleanup(Reset)
	h := &countingHooks{}
	SetCacheHooks(h)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Cache().OnCacheHit(context.Background(), "artifact")
				Pipeline().OnRenderComplete(context.Background(), []string{"svg"}, time.Millisecond, nil)
			}
		}()
	}
	wg.Wait()

	if h.events != 800 {
		t.Errorf("events = %d, want 800", h.events)
	}
}
