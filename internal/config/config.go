package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
)

// prefixedKeys are read from APIBANNER_<KEY> (dots become underscores).
var prefixedKeys = []string{
	"http.port",
	"http.rate_limit",
	"http.metrics",
	"telemetry.render_ndjson_path",
}

type Config struct {
	// APIURL is displayed verbatim in the page heading. Empty when unset.
	APIURL string

	HTTPPort int
	// RateLimit is requests per minute per client IP; 0 disables limiting.
	RateLimit int
	Metrics   bool

	// RenderLogPath enables NDJSON render records when set. Leave empty to disable file logging.
	RenderLogPath string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("config")

	v.SetEnvPrefix("APIBANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// A set-but-empty variable is a value, not an absence.
	v.AllowEmptyEnv(true)

	// The displayed URL comes from unprefixed names only. The first one set wins,
	// even when it is empty.
	if err := v.BindEnv("api.url", "API_URL", "REACT_APP_API_URL"); err != nil {
		return Config{}, fmt.Errorf("bind api.url: %w", err)
	}
	for _, key := range prefixedKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	v.SetDefault("http.port", 3000)
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.metrics", true)

	v.SetDefault("telemetry.render_ndjson_path", "")

	// Config file is optional; env-only is fine.
	_ = v.ReadInConfig()

	cfg := Config{
		APIURL:        v.GetString("api.url"),
		HTTPPort:      v.GetInt("http.port"),
		RateLimit:     v.GetInt("http.rate_limit"),
		Metrics:       v.GetBool("http.metrics"),
		RenderLogPath: strings.TrimSpace(v.GetString("telemetry.render_ndjson_path")),
	}

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("invalid http.port %d", cfg.HTTPPort)
	}
	if cfg.RateLimit < 0 {
		return Config{}, fmt.Errorf("invalid http.rate_limit %d", cfg.RateLimit)
	}

	if cfg.RenderLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.RenderLogPath), 0o755); err != nil {
			return Config{}, fmt.Errorf("create telemetry dir: %w", err)
		}
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
