package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "JOURNAL_PATH", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, 6.0, cfg.Charts.Markers.Min)
	assert.Equal(t, 24.0, cfg.Charts.Markers.Max)
	require.Len(t, cfg.Charts.Intensity, 3)
	assert.True(t, math.IsInf(cfg.Charts.Intensity[2].UpperBound, 1))
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sendnow.yaml")
	yml := `
server:
  port: ":9090"
  allowed_origins: ["https://sendnow.example"]
rate_limit:
  requests: 3
  window: 30s
charts:
  markers: {min: 4, max: 16}
  intensity:
    - upper_bound: 3
      band: {id: cool, gradient: hotspot-blue, color: "#0000FF", opacity: 0.4}
    - upper_bound: .inf
      band: {id: hot, gradient: hotspot-red, color: "#FF4500", opacity: 0.6}
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode, "unset keys keep their defaults")
	assert.Equal(t, []string{"https://sendnow.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
	assert.Equal(t, 16.0, cfg.Charts.Markers.Max)

	scale, err := cfg.IntensityScale()
	require.NoError(t, err)
	assert.Equal(t, "cool", scale.Bucket(2).ID)
	assert.Equal(t, "hot", scale.Bucket(100).ID)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JOURNAL_PATH", "/tmp/j.db")
	t.Setenv("RATE_LIMIT_REQUESTS", "50")
	t.Setenv("RATE_LIMIT_WINDOW", "2m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/tmp/j.db", cfg.Journal.Path)
	assert.Equal(t, 50, cfg.RateLimit.Requests)
	assert.Equal(t, 2*time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_BadRateLimitEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_REQUESTS", "lots")
	_, err := Load("")
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "sendnow.yaml")
	cfg := DefaultConfig()
	cfg.Journal.Enabled = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"mode":          func(c *Config) { c.Server.Mode = "prod" },
		"port":          func(c *Config) { c.Server.Port = "" },
		"level":         func(c *Config) { c.Logging.Level = "trace" },
		"format":        func(c *Config) { c.Logging.Format = "xml" },
		"requests":      func(c *Config) { c.RateLimit.Requests = 0 },
		"window":        func(c *Config) { c.RateLimit.Window = "soon" },
		"journal path":  func(c *Config) { c.Journal.Enabled = true; c.Journal.Path = "" },
		"markers":       func(c *Config) { c.Charts.Markers.Max = 1 },
		"no bands":      func(c *Config) { c.Charts.Intensity = nil },
		"band colour":   func(c *Config) { c.Charts.Intensity[0].Band.Color = "gold" },
		"shutdown":      func(c *Config) { c.Server.ShutdownTimeout = "-1s" },
		"bands unorder": func(c *Config) { c.Charts.Intensity[1].UpperBound = 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
