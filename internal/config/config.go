package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. FUELCALC_SERVER__ADDR.
const EnvPrefix = "FUELCALC_"

type Config struct {
	Server    ServerConfig    `json:"server"`
	Cache     CacheConfig     `json:"cache"`
	Logging   LoggingConfig   `json:"logging"`
	Geocoding GeocodingConfig `json:"geocoding"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
	// RateLimit is the number of tool calls allowed per client IP and minute. 0 disables it.
	RateLimit              int  `json:"rate_limit"`
	MCP                    bool `json:"mcp"`
	Metrics                bool `json:"metrics"`
	ShutdownTimeoutSeconds int  `json:"shutdown_timeout_seconds"`
}

type CacheConfig struct {
	TTLMinutes     int `json:"ttl_minutes"`
	CleanupMinutes int `json:"cleanup_minutes"`
}

type LoggingConfig struct {
	Level string `json:"level"`
	JSON  bool   `json:"json"`
}

type GeocodingConfig struct {
	Server       string `json:"server"`
	CacheMinutes int    `json:"cache_minutes"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:                   "127.0.0.1:8080",
			RateLimit:              60,
			MCP:                    true,
			Metrics:                true,
			ShutdownTimeoutSeconds: 10,
		},
		Cache: CacheConfig{
			TTLMinutes:     30,
			CleanupMinutes: 90,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Geocoding: GeocodingConfig{
			Server:       "https://nominatim.openstreetmap.org/",
			CacheMinutes: 60,
		},
	}
}

// Load layers the file at path (skipped when empty) and FUELCALC_ environment
// variables over Default.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0")
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("server.shutdown_timeout_seconds must be > 0")
	}
	if c.Cache.TTLMinutes < 0 || c.Cache.CleanupMinutes < 0 {
		return fmt.Errorf("cache durations must be >= 0")
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		if err := level.UnmarshalText([]byte(l.Level)); err != nil {
			return level, fmt.Errorf("invalid logging.level %q: %w", l.Level, err)
		}
		return level, nil
	}
	return level, fmt.Errorf("invalid logging.level %q", l.Level)
}
