package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/sendnow-backend-go/internal/geometry"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Journal   JournalConfig   `yaml:"journal"`
	Charts    ChartsConfig    `yaml:"charts"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port            string   `yaml:"port"`             // ":8080"
	Mode            string   `yaml:"mode"`             // gin mode: debug, release, test
	AllowedOrigins  []string `yaml:"allowed_origins"`  // CORS; "*" allows any
	ShutdownTimeout string   `yaml:"shutdown_timeout"` // Go duration
}

// LoggingConfig configures zap
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// RateLimitConfig bounds form submissions per client IP
type RateLimitConfig struct {
	Requests int    `yaml:"requests"`
	Window   string `yaml:"window"` // Go duration
}

// JournalConfig controls the optional submission journal. When disabled,
// submissions are only logged.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ChartsConfig tunes chart rendering
type ChartsConfig struct {
	Markers   geometry.MarkerScale `yaml:"markers"`
	Intensity []geometry.Threshold `yaml:"intensity"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			Mode:            "release",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: "10s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			Requests: 10,
			Window:   "1m",
		},
		Journal: JournalConfig{
			Enabled: false,
			Path:    "./data/submissions.db",
		},
		Charts: ChartsConfig{
			Markers:   geometry.DefaultMarkerScale,
			Intensity: geometry.DefaultThresholds(),
		},
	}
}

// Load reads a YAML file over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if port := os.Getenv("PORT"); port != "" {
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		c.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if path := os.Getenv("JOURNAL_PATH"); path != "" {
		c.Journal.Enabled = true
		c.Journal.Path = path
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_REQUESTS %q: %w", v, err)
		}
		c.RateLimit.Requests = n
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		c.RateLimit.Window = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	return nil
}

// Validate checks the configuration, reporting every problem found
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if d, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil || d <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout %q is not a positive duration", c.Server.ShutdownTimeout))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not supported", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or console", c.Logging.Format))
	}

	if c.RateLimit.Requests <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests))
	}
	if d, err := time.ParseDuration(c.RateLimit.Window); err != nil || d <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.window %q is not a positive duration", c.RateLimit.Window))
	}

	if c.Journal.Enabled && c.Journal.Path == "" {
		errs = append(errs, errors.New("journal.path is required when the journal is enabled"))
	}

	if err := c.Charts.Markers.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("charts.markers: %w", err))
	}
	if _, err := geometry.NewIntensityScale(c.Charts.Intensity); err != nil {
		errs = append(errs, fmt.Errorf("charts.intensity: %w", err))
	}
	for _, t := range c.Charts.Intensity {
		if _, err := colorful.Hex(t.Band.Color); err != nil {
			errs = append(errs, fmt.Errorf("charts.intensity band %q colour %q: %w", t.Band.ID, t.Band.Color, err))
		}
	}

	return errors.Join(errs...)
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	d, err := time.ParseDuration(c.RateLimit.Window)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// GetShutdownTimeout returns the graceful shutdown budget as a duration
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// IntensityScale builds the heatmap bucketing scale
func (c *Config) IntensityScale() (*geometry.IntensityScale, error) {
	return geometry.NewIntensityScale(c.Charts.Intensity)
}
