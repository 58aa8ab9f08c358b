package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/vagas/internal/resume"
	"github.com/spigell/vagas/internal/vagas"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	t.Setenv("VAGAS_API_URL", "")
	t.Setenv("VITE_API_URL", "")
	t.Setenv("VAGAS_REDIS_URL", "")

	v := viper.New()
	SetDefaults(v)
	require.NoError(t, BindEnv(v))

	if yaml != "" {
		path := filepath.Join(t.TempDir(), "vagas.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())
	}

	return v
}

func TestLoadDefaults(t *testing.T) {
	v := newViper(t, "api:\n  url: http://localhost:8080/api\n")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.MaxRetries)
	assert.Equal(t, time.Second, cfg.API.InitialBackoff)
	assert.Equal(t, vagas.DefaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, resume.LayoutSingle, cfg.Layout())
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.True(t, strings.HasSuffix(cfg.Cache.Path, "curriculos.json"))
	assert.Empty(t, cfg.ExcludedCompanies())
}

func TestLoadFile(t *testing.T) {
	v := newViper(t, `
api:
  url: https://api.example.com/api
  timeout: 5s
  max-retries: 1
  initial-backoff: 250ms
form:
  layout: split
exclude:
  companies: [Acme, Globex]
metrics-file: /tmp/vagas.prom
`)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1, cfg.API.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.API.InitialBackoff)
	assert.Equal(t, resume.LayoutSplit, cfg.Layout())
	assert.Equal(t, []string{"Acme", "Globex"}, cfg.ExcludedCompanies())
	assert.Equal(t, "/tmp/vagas.prom", cfg.MetricsFile)
}

func TestLoadEnv(t *testing.T) {
	v := newViper(t, "")
	t.Setenv("VITE_API_URL", "http://legacy:8080/api")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://legacy:8080/api", cfg.API.URL)

	t.Setenv("VAGAS_API_URL", "http://primary:8080/api")
	cfg, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://primary:8080/api", cfg.API.URL)
}

func TestLoadFailsFast(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{name: "missing url", yaml: "form:\n  layout: single\n", want: "VAGAS_API_URL"},
		{name: "invalid url", yaml: "api:\n  url: localhost\n", want: "invalid"},
		{name: "bad layout", yaml: "api:\n  url: http://x\nform:\n  layout: wizard\n", want: "layout"},
		{name: "redis without url", yaml: "api:\n  url: http://x\ncache:\n  backend: redis\n", want: "redis-url"},
		{name: "unknown backend", yaml: "api:\n  url: http://x\ncache:\n  backend: memcached\n", want: "unknown cache backend"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(newViper(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestMissingURLWrapsSentinel(t *testing.T) {
	_, err := Load(newViper(t, ""))
	assert.ErrorIs(t, err, vagas.ErrMissingBaseURL)
}
