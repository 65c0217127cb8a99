package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("PROFILE_README_TOKEN", "")
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.NoCache)
	assert.False(t, cfg.Authenticated())
	assert.Equal(t, "profile.json", filepath.Base(cfg.ProfilePath))
	assert.Empty(t, cfg.File)
}

func TestLoadTokenFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("GITHUB_TOKEN", "ghp_fallback")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "ghp_fallback", cfg.Token)

	t.Setenv("PROFILE_README_TOKEN", "ghp_preferred")
	cfg, err = Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "ghp_preferred", cfg.Token)
}

func TestLoadPrefixedEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PROFILE_README_TEMPLATE", "elegant")
	t.Setenv("PROFILE_README_CACHE_TTL", "90s")
	t.Setenv("PROFILE_README_NO_CACHE", "true")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "elegant", cfg.Template)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.NoCache)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
template: developer
profile_path: /tmp/me.yaml
output: README.md
log_level: DEBUG
cache_ttl: 1m
`), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "developer", cfg.Template)
	assert.Equal(t, "/tmp/me.yaml", cfg.ProfilePath)
	assert.Equal(t, "README.md", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, path, cfg.File)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", CacheTTL: time.Minute, ProfilePath: "p.json"}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.LogLevel = "loud"
	assert.ErrorContains(t, bad.Validate(), "invalid log level")

	bad = valid
	bad.CacheTTL = 0
	assert.ErrorContains(t, bad.Validate(), "cache TTL")

	bad = valid
	bad.ProfilePath = ""
	assert.ErrorContains(t, bad.Validate(), "profile path")

	bad = valid
	bad.APIURL = "not a url"
	assert.ErrorContains(t, bad.Validate(), "invalid API URL")

	enterprise := valid
	enterprise.APIURL = "https://github.example.com/api/v3"
	assert.NoError(t, enterprise.Validate())

	unknownTemplate := valid
	unknownTemplate.Template = "retro"
	assert.NoError(t, unknownTemplate.Validate())
}

func TestMaskedToken(t *testing.T) {
	assert.Equal(t, "(none)", (&Config{}).MaskedToken())
	assert.Equal(t, "***", (&Config{Token: "abc"}).MaskedToken())
	assert.Equal(t, "******5678", (&Config{Token: "ghp_x_5678"}).MaskedToken())
}
