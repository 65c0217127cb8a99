package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"profile-readme/internal/cache"
)

// EnvPrefix namespaces environment overrides, e.g. PROFILE_README_TEMPLATE.
const EnvPrefix = "PROFILE_README"

const (
	KeyToken       = "token"
	KeyTemplate    = "template"
	KeyProfilePath = "profile_path"
	KeyOutput      = "output"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyCacheTTL    = "cache_ttl"
	KeyNoCache     = "no_cache"
	KeyAPIURL      = "api_url"
)

type Config struct {
	Token       string
	Template    string
	ProfilePath string
	Output      string
	LogLevel    string
	LogFile     string
	CacheTTL    time.Duration
	NoCache     bool
	// APIURL overrides the GitHub API root, e.g. for GitHub Enterprise.
	APIURL      string

	// File is the config file that was read, empty when none was found.
	File string
}

// Dir returns ~/.profile-readme, where the profile and config live.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".profile-readme"), nil
}

// New returns a viper instance with defaults and environment bindings set.
// Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyTemplate, "modern")
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCacheTTL, cache.DefaultTTL)
	v.SetDefault(KeyNoCache, false)
	v.SetDefault(KeyAPIURL, "")
	if dir, err := Dir(); err == nil {
		v.SetDefault(KeyProfilePath, filepath.Join(dir, "profile.json"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// The prefixed variable wins over the conventional one.
	_ = v.BindEnv(KeyToken, EnvPrefix+"_TOKEN", "GITHUB_TOKEN")

	return v
}

// Load reads configFile, or config.yaml from the profile directory and the
// working directory when configFile is empty, and resolves every key.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Token:       strings.TrimSpace(v.GetString(KeyToken)),
		Template:    strings.TrimSpace(v.GetString(KeyTemplate)),
		ProfilePath: v.GetString(KeyProfilePath),
		Output:      v.GetString(KeyOutput),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFile:     v.GetString(KeyLogFile),
		CacheTTL:    v.GetDuration(KeyCacheTTL),
		NoCache:     v.GetBool(KeyNoCache),
		APIURL:      strings.TrimSpace(v.GetString(KeyAPIURL)),
		File:        v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later. Unknown template
// ids are accepted; generation falls back to the default template.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.LogLevel)
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.CacheTTL)
	}

	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid API URL: %s", c.APIURL)
		}
	}

	if c.ProfilePath == "" {
		return fmt.Errorf("profile path is required; set --profile or %s_PROFILE_PATH", EnvPrefix)
	}

	return nil
}

// Authenticated reports whether GitHub requests will carry a token.
func (c *Config) Authenticated() bool {
	return c.Token != ""
}

// MaskedToken returns the token with all but its last four characters hidden.
func (c *Config) MaskedToken() string {
	if c.Token == "" {
		return "(none)"
	}
	if len(c.Token) <= 4 {
		return strings.Repeat("*", len(c.Token))
	}
	return strings.Repeat("*", len(c.Token)-4) + c.Token[len(c.Token)-4:]
}
