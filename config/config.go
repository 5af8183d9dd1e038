package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names. A YAML config file may set the same values;
// environment variables win.
const (
	EnvConfigFile   = "PDFPARSE_CONFIG_FILE"
	EnvMaxFileBytes = "PDFPARSE_MAX_FILE_BYTES"
	EnvFetchTimeout = "PDFPARSE_FETCH_TIMEOUT_SECONDS"
	EnvDefaultMode  = "PDFPARSE_DEFAULT_MODE"
	EnvContinueFail = "PDFPARSE_CONTINUE_ON_FAIL"
)

// Defaults applied for missing or invalid values.
const (
	DefaultMaxFileBytes int64 = 50 << 20
	DefaultFetchTimeout       = 30 * time.Second
	DefaultMode               = "raw"
)

// Config holds runtime configuration sourced from an optional YAML file and
// environment variables.
type Config struct {
	MaxFileSizeBytes    int64  `yaml:"max_file_size_bytes"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	DefaultMode         string `yaml:"default_mode"`
	ContinueOnFail      bool   `yaml:"continue_on_fail"`
}

// MaxFileSizeMB returns the configured limit in whole megabytes.
func (c *Config) MaxFileSizeMB() int64 {
	return c.MaxFileSizeBytes >> 20
}

// FetchTimeout returns the URL fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Load builds Config from defaults, then the YAML file named by
// PDFPARSE_CONFIG_FILE (if set and readable), then environment variables.
// Missing or invalid values fall back rather than erroring.
func Load() *Config {
	cfg := &Config{
		MaxFileSizeBytes:    DefaultMaxFileBytes,
		FetchTimeoutSeconds: int(DefaultFetchTimeout / time.Second),
		DefaultMode:         DefaultMode,
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}
	cfg.applyEnv()
	cfg.clamp()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvMaxFileBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.MaxFileSizeBytes = n
		}
	}
	if v := os.Getenv(EnvFetchTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.FetchTimeoutSeconds = n
		}
	}
	if v := os.Getenv(EnvDefaultMode); v != "" {
		c.DefaultMode = v
	}
	if v := os.Getenv(EnvContinueFail); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ContinueOnFail = b
		}
	}
}

// clamp restores defaults for values a config file set to something
// unusable.
func (c *Config) clamp() {
	if c.MaxFileSizeBytes <= 0 {
		c.MaxFileSizeBytes = DefaultMaxFileBytes
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = int(DefaultFetchTimeout / time.Second)
	}
	if c.DefaultMode == "" {
		c.DefaultMode = DefaultMode
	}
}
