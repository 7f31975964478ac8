package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every key Load reads; the originals come back on cleanup.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"API_URL",
		"REACT_APP_API_URL",
		"APIBANNER_API_URL",
		"APIBANNER_HTTP_PORT",
		"APIBANNER_HTTP_RATE_LIMIT",
		"APIBANNER_HTTP_METRICS",
		"APIBANNER_TELEMETRY_RENDER_NDJSON_PATH",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfigFile(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.APIURL)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 0, cfg.RateLimit)
	assert.True(t, cfg.Metrics)
	assert.Empty(t, cfg.RenderLogPath)
}

func TestLoad_APIURLIsVerbatim(t *testing.T) {
	for _, v := range []string{
		"https://api.example.com",
		"  padded  ",
		"http://x/?a=1&b=<2>",
	} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("API_URL", v)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, v, cfg.APIURL)
		})
	}
}

func TestLoad_ReactAppFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("REACT_APP_API_URL", "https://legacy.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://legacy.example.com", cfg.APIURL)

	t.Setenv("API_URL", "https://api.example.com")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
}

func TestLoad_PrefixedOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APIBANNER_HTTP_PORT", "8081")
	t.Setenv("APIBANNER_HTTP_RATE_LIMIT", "30")
	t.Setenv("APIBANNER_HTTP_METRICS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTPPort)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.False(t, cfg.Metrics)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("APIBANNER_HTTP_PORT", "70000")
	_, err := Load()
	require.ErrorContains(t, err, "http.port")

	clearEnv(t)
	t.Setenv("APIBANNER_HTTP_RATE_LIMIT", "-1")
	_, err = Load()
	require.ErrorContains(t, err, "http.rate_limit")
}

func TestLoad_CreatesRenderLogDir(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "logs", "render.ndjson")
	t.Setenv("APIBANNER_TELEMETRY_RENDER_NDJSON_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.RenderLogPath)

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestLoad_EmptyAPIURLIsLiteral(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "")
	t.Setenv("REACT_APP_API_URL", "https://legacy.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.APIURL)
}

func TestLoad_EmptyAPIURLBeatsConfigFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "api:\n  url: https://file.example.com\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.APIURL)

	t.Setenv("API_URL", "")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.APIURL)
}

func TestLoad_PrefixedNameDoesNotReachAPIURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("APIBANNER_API_URL", "https://shadow.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.APIURL)

	t.Setenv("API_URL", "https://api.example.com")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
}
