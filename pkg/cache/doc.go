// Package cache stores rendered artifacts between runs.
//
// # Backends
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per key under ~/.cache/periodic (CLI default)
//   - [RedisCache]: a shared Redis instance, entries expire through EX
//   - [MongoCache]: one document per key, expired by a TTL index
//
// All backends implement [Cache] and are safe for concurrent use. Backends
// that can drop every entry at once also implement [Clearer].
//
// # Keys
//
// A [Keyer] derives keys from a catalog hash and render options, so a changed
// catalog or option never hits a stale artifact. [ScopedKeyer] adds a prefix,
// which the CLI and server use to separate releases sharing one backend.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
//	key := keyer.ArtifactKey(catalogHash, cache.ArtifactKeyOpts{Format: "svg", Style: "orbit"})
//	data, hit, err := c.Get(ctx, key)
package cache
