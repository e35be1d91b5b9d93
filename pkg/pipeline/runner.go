package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/periodic/pkg/cache"
	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/observability"
	"github.com/matzehuels/periodic/pkg/table"
)

// cacheKeyType labels artifact cache operations for observability hooks.
const cacheKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the catalog, cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Catalog *element.Catalog
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger

	// TTL is the artifact lifetime. Zero uses cache.TTLArtifact.
	TTL time.Duration

	hashOnce    sync.Once
	catalogHash string
}

// NewRunner creates a runner over the default catalog.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog: element.Default(),
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
	}
}

// CatalogHash returns the content hash of the runner's catalog. Artifact cache
// keys include it, so a changed catalog never serves stale renders.
func (r *Runner) CatalogHash() string {
	r.hashOnce.Do(func() {
		// Element records contain only plain fields and always marshal.
		data, _ := json.Marshal(r.Catalog.All())
		r.catalogHash = cache.Hash(data)
	})
	return r.catalogHash
}

// Classify runs the classification stage only. It is never cached.
func (r *Runner) Classify(ctx context.Context, opts Options) (table.Groups, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return table.Groups{}, err
	}
	filter := opts.Filter().String()
	hooks := observability.Pipeline()
	hooks.OnClassifyStart(ctx, filter)

	start := time.Now()
	g, err := Classify(r.Catalog, opts)
	if err != nil {
		return table.Groups{}, err
	}
	elapsed := time.Since(start)
	hooks.OnClassifyComplete(ctx, filter, g.Len(), elapsed)

	opts.Logger.Debug("classified elements",
		"filter", filter,
		"main", len(g.Main),
		"lanthanides", len(g.Lanthanides),
		"actinides", len(g.Actinides),
		"duration", elapsed)
	return g, nil
}

// Render runs the complete classify → layout → render pipeline with caching.
func (r *Runner) Render(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheInfo: CacheInfo{Hits: make(map[string]bool, len(opts.Formats))},
	}

	// Stage 1: Classify
	classifyStart := time.Now()
	g, err := r.Classify(ctx, opts)
	if err != nil {
		return nil, stageError(err, "classify")
	}
	result.Groups = g
	result.Stats.ElementCount = g.Len()
	result.Stats.ClassifyTime = time.Since(classifyStart)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := GenerateLayout(g, opts)
	if err != nil {
		return nil, stageError(err, "layout")
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)

	// Stage 3: Render
	renderStart := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, hits, err := r.renderWithCache(ctx, result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) > 0
	for _, hit := range hits {
		result.CacheInfo.RenderHit = result.CacheInfo.RenderHit && hit
	}

	opts.Logger.Info("rendered table",
		"filter", opts.Filter().String(),
		"elements", result.Stats.ElementCount,
		"formats", opts.Formats,
		"cached", result.CacheInfo.RenderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCache serves each format from the cache when possible and renders
// the rest. Cache failures are logged and never fail the run.
func (r *Runner) renderWithCache(ctx context.Context, res *Result, opts Options) (map[string][]byte, map[string]bool, error) {
	cacheHooks := observability.Cache()
	catalogHash := r.CatalogHash()
	artifacts := make(map[string][]byte, len(opts.Formats))
	hits := make(map[string]bool, len(opts.Formats))

	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}
		key := r.Keyer.ArtifactKey(catalogHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err == nil && hit {
				cacheHooks.OnCacheHit(ctx, cacheKeyType)
				artifacts[format] = data
				hits[format] = true
				continue
			}
			cacheHooks.OnCacheMiss(ctx, cacheKeyType)
		}

		l := res.Layout
		if format == FormatHTML && opts.Category != "" {
			pl, err := PageLayout(r.Catalog, opts)
			if err != nil {
				return nil, nil, stageError(err, "layout page")
			}
			l = pl
		}
		data, err := RenderFormat(ctx, l, format, opts)
		if err != nil {
			return nil, nil, stageError(err, "render "+format)
		}
		artifacts[format] = data
		hits[format] = false

		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return artifacts, hits, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// stageError wraps err with the failing stage and keeps its error code.
func stageError(err error, stage string) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "%s", stage)
}
