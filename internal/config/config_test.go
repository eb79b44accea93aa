package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("url", DefaultUrl, "")
	flags.Duration("timeout", 0, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, DefaultUrl, cfg.Ekart.Url)
	require.Zero(t, cfg.Ekart.Timeout, "requests must not time out unless configured")
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
environment: production
log:
  level: debug
ekart:
  url: http://localhost:9000/track
  timeout: 15s
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "http://localhost:9000/track", cfg.Ekart.Url)
	require.Equal(t, 15*time.Second, cfg.Ekart.Timeout)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, `
ekart:
  url: http://file.example/track
  timeout: 15s
`)
	t.Setenv("EKART_TRACE_EKART_URL", "http://env.example/track")
	t.Setenv("EKART_TRACE_LOG_LEVEL", "warn")

	cfg, err := Load(path, testFlags(t, "--timeout", "3s"))
	require.NoError(t, err)

	require.Equal(t, "http://env.example/track", cfg.Ekart.Url, "env overrides file")
	require.Equal(t, "warn", cfg.Log.Level, "unset flag does not override env")
	require.Equal(t, 3*time.Second, cfg.Ekart.Timeout, "flag overrides file")

	cfg, err = Load(path, testFlags(t, "--url", "http://flag.example/track"))
	require.NoError(t, err)
	require.Equal(t, "http://flag.example/track", cfg.Ekart.Url, "flag overrides env")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad url", args: []string{"--url", "not a url"}},
		{name: "negative timeout", args: []string{"--timeout=-1s"}},
		{name: "bad level", args: []string{"--log-level", "loud"}},
		{name: "bad environment", env: map[string]string{"EKART_TRACE_ENVIRONMENT": "staging"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", testFlags(t, tt.args...))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), nil)
	require.Error(t, err)
}
