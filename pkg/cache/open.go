package cache

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// DefaultRedisPrefix namespaces Redis keys.
const DefaultRedisPrefix = "periodic:"

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Dir           string // file backend; empty uses DefaultDir
	RedisAddr     string
	RedisPrefix   string // empty uses DefaultRedisPrefix
	MongoURI      string
	MongoDatabase string
	Logger        *log.Logger
}

// Open creates the configured backend. Networked backends are connected with
// [RetryWithBackoff], so a server started next to its cache can wait for it.
func Open(ctx context.Context, opts Options) (Cache, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendNone:
		return NewNullCache(), nil

	case BackendFile:
		dir := opts.Dir
		if dir == "" {
			d, err := DefaultDir()
			if err != nil {
				return nil, fmt.Errorf("cache dir: %w", err)
			}
			dir = d
		}
		c, err := NewFileCache(dir)
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		logger.Debug("using file cache", "dir", dir)
		return c, nil

	case BackendRedis:
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = DefaultRedisPrefix
		}
		var c *RedisCache
		err := RetryWithBackoff(ctx, func() error {
			var err error
			c, err = NewRedisCache(ctx, opts.RedisAddr, prefix)
			if err != nil {
				logger.Warn("redis not ready", "addr", opts.RedisAddr, "error", err)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		logger.Debug("using redis cache", "addr", opts.RedisAddr, "prefix", prefix)
		return c, nil

	case BackendMongo:
		var c *MongoCache
		err := RetryWithBackoff(ctx, func() error {
			var err error
			c, err = NewMongoCache(ctx, opts.MongoURI, opts.MongoDatabase)
			if err != nil {
				logger.Warn("mongo not ready", "database", opts.MongoDatabase, "error", err)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		logger.Debug("using mongo cache", "database", opts.MongoDatabase)
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q (want none, file, redis or mongo)", ErrUnknownBackend, opts.Backend)
}
