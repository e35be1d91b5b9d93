package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/periodic/pkg/errors"
)

const sampleConfig = `
[server]
addr = ":9090"
images_dir = "/srv/images"
shutdown_timeout = "5s"

[render]
style = "glow"
theme = "light"
cell_size = 80

[cache]
backend = "redis"
ttl = "1h"
redis_addr = "cache:6379"
mongo_uri = "mongodb://db:27017"
mongo_database = "tables"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolate points the default config path at an empty directory and clears overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, b := range envBindings {
		t.Setenv(EnvPrefix+b.name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty without a file", cfg.Path)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, sampleConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Server: ServerConfig{Addr: ":9090", ImagesDir: "/srv/images", ShutdownTimeout: Duration(5 * time.Second)},
		Render: RenderConfig{Style: "glow", Theme: "light", CellSize: 80},
		Cache: CacheConfig{
			Backend:       "redis",
			TTL:           Duration(time.Hour),
			RedisAddr:     "cache:6379",
			MongoURI:      "mongodb://db:27017",
			MongoDatabase: "tables",
		},
		Path: path,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	isolate(t)
	dir := os.Getenv("XDG_CONFIG_HOME")
	path := filepath.Join(dir, "periodic", "config.toml")
	os.MkdirAll(filepath.Dir(path), 0o755)
	os.WriteFile(path, []byte("[render]\ntheme = \"light\"\n"), 0o644)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path || cfg.Render.Theme != "light" {
		t.Errorf("Path %q theme %q", cfg.Path, cfg.Render.Theme)
	}
	// Unset sections keep their defaults.
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	path := writeConfig(t, sampleConfig)
	t.Setenv("PERIODIC_ADDR", ":7000")
	t.Setenv("PERIODIC_THEME", "dark")
	t.Setenv("PERIODIC_CELL_SIZE", "48")
	t.Setenv("PERIODIC_CACHE_TTL", "30m")
	t.Setenv("PERIODIC_CACHE_BACKEND", "none")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7000" || cfg.Render.Theme != "dark" || cfg.Render.CellSize != 48 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Cache.TTL.Std() != 30*time.Minute || cfg.Cache.Backend != "none" {
		t.Errorf("cache env not applied: %+v", cfg.Cache)
	}
	// Values without an override come from the file.
	if cfg.Render.Style != "glow" {
		t.Errorf("Style = %q", cfg.Render.Style)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"syntax", "[server\naddr = 1", nil},
		{"unknown key", "[server]\nport = 8080\n", nil},
		{"bad duration", "[server]\nshutdown_timeout = \"soon\"\n", nil},
		{"bad style", "[render]\nstyle = \"handdrawn\"\n", nil},
		{"bad theme", "[render]\ntheme = \"sepia\"\n", nil},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", nil},
		{"negative cell", "[render]\ncell_size = -4\n", nil},
		{"bad env number", "", map[string]string{"PERIODIC_CELL_SIZE": "big"}},
		{"bad env duration", "", map[string]string{"PERIODIC_CACHE_TTL": "forever"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) == "" {
				t.Errorf("error should carry a code: %v", err)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing file should fail")
	}
}

func TestCacheOptions(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = "mongo"
	opts := cfg.CacheOptions()
	if opts.Backend != "mongo" || opts.MongoURI != "mongodb://localhost:27017" || opts.MongoDatabase != "periodic" {
		t.Errorf("CacheOptions = %+v", opts)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	isolate(t)
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[server]", `shutdown_timeout = "10s"`, `ttl = "24h0m0s"`, `style = "orbit"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cfg, err := Load(writeConfig(t, out))
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	cfg.Path = ""
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
