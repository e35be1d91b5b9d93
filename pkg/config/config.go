// Package config loads Periodic's TOML configuration file.
//
// Settings are resolved in three layers: built-in defaults, the config file,
// and PERIODIC_* environment variables. Command-line flags are applied by the
// caller on top of the result.
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	srv := server.New(runner, server.WithAddr(cfg.Server.Addr))
package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/periodic/pkg/cache"
	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/render/styles"
)

const (
	appName  = "periodic"
	fileName = "config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PERIODIC_"
)

// Duration is a time.Duration written as a Go duration string ("10s", "24h").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the whole configuration file.
type Config struct {
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`

	// Path is the file the configuration was read from. Empty when no file exists.
	Path string `toml:"-"`
}

// ServerConfig configures `periodic serve`.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ImagesDir       string   `toml:"images_dir"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// RenderConfig holds default render options.
type RenderConfig struct {
	Style    string  `toml:"style"`
	Theme    string  `toml:"theme"`
	CellSize float64 `toml:"cell_size"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend       string   `toml:"backend"` // none | file | redis | mongo
	TTL           Duration `toml:"ttl"`
	Dir           string   `toml:"dir,omitempty"`
	RedisAddr     string   `toml:"redis_addr"`
	MongoURI      string   `toml:"mongo_uri"`
	MongoDatabase string   `toml:"mongo_database"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ImagesDir:       "./images",
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Render: RenderConfig{
			Style:    styles.DefaultStyle,
			Theme:    styles.DefaultTheme.Name,
			CellSize: layout.DefaultCellSize,
		},
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			TTL:           Duration(cache.TTLArtifact),
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: appName,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/periodic/config.toml, falling back to
// ~/.config/periodic/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration. An empty path uses [DefaultPath], where a
// missing file is not an error. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		// Without a home directory only defaults and the environment apply.
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	var data []byte
	err := os.ErrNotExist
	if path != "" {
		data, err = os.ReadFile(path)
	}
	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
		}
		cfg.Path = path
	case os.IsNotExist(err) && !explicit:
	default:
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// envBindings maps environment variables to config fields.
var envBindings = []struct {
	name string
	set  func(*Config, string) error
}{
	{"ADDR", func(c *Config, v string) error { c.Server.Addr = v; return nil }},
	{"IMAGES_DIR", func(c *Config, v string) error { c.Server.ImagesDir = v; return nil }},
	{"SHUTDOWN_TIMEOUT", func(c *Config, v string) error { return c.Server.ShutdownTimeout.UnmarshalText([]byte(v)) }},
	{"STYLE", func(c *Config, v string) error { c.Render.Style = v; return nil }},
	{"THEME", func(c *Config, v string) error { c.Render.Theme = v; return nil }},
	{"CELL_SIZE", func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		c.Render.CellSize = f
		return err
	}},
	{"CACHE_BACKEND", func(c *Config, v string) error { c.Cache.Backend = v; return nil }},
	{"CACHE_TTL", func(c *Config, v string) error { return c.Cache.TTL.UnmarshalText([]byte(v)) }},
	{"CACHE_DIR", func(c *Config, v string) error { c.Cache.Dir = v; return nil }},
	{"REDIS_ADDR", func(c *Config, v string) error { c.Cache.RedisAddr = v; return nil }},
	{"MONGO_URI", func(c *Config, v string) error { c.Cache.MongoURI = v; return nil }},
	{"MONGO_DATABASE", func(c *Config, v string) error { c.Cache.MongoDatabase = v; return nil }},
}

func applyEnv(cfg *Config) error {
	for _, b := range envBindings {
		v, ok := os.LookupEnv(EnvPrefix + b.name)
		if !ok || v == "" {
			continue
		}
		if err := b.set(cfg, v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s%s", EnvPrefix, b.name)
		}
	}
	return nil
}

// Validate checks values that would otherwise fail later, deep inside a command.
func (c Config) Validate() error {
	if _, err := styles.Parse(c.Render.Style); err != nil {
		return err
	}
	if _, err := styles.ParseTheme(c.Render.Theme); err != nil {
		return err
	}
	if c.Render.CellSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render.cell_size must be positive")
	}
	switch strings.ToLower(c.Cache.Backend) {
	case "", cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Server.ShutdownTimeout < 0 || c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "durations must not be negative")
	}
	return nil
}

// CacheOptions converts the cache section for [cache.Open].
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:       c.Cache.Backend,
		Dir:           c.Cache.Dir,
		RedisAddr:     c.Cache.RedisAddr,
		MongoURI:      c.Cache.MongoURI,
		MongoDatabase: c.Cache.MongoDatabase,
	}
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
