package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "template.xlsx", cfg.TemplatePath)
	assert.False(t, cfg.BootstrapTemplate)
	assert.Equal(t, "0.0.0.0:10000", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.SmokeLogin)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: local
template_path: ./templates/dd.xlsx
bootstrap_template: true
smoke_login: ops
smoke_pass: secret
http_server:
  address: localhost:4001
  timeout: 4s
cors:
  allowed_origins:
    - http://localhost:5173
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "./templates/dd.xlsx", cfg.TemplatePath)
	assert.True(t, cfg.BootstrapTemplate)
	assert.Equal(t, "ops", cfg.SmokeLogin)
	assert.Equal(t, "secret", cfg.SmokePass)
	assert.Equal(t, "localhost:4001", cfg.Address)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TEMPLATE_PATH", "/srv/template.xlsx")
	t.Setenv("HTTP_ADDRESS", ":8080")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/srv/template.xlsx", cfg.TemplatePath)
	assert.Equal(t, ":8080", cfg.Address)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_server: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
