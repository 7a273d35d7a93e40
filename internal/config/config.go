package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// Timezone is the location used for "today", week views and the coach banner expiry.
	Timezone string `toml:"timezone"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// text generation
	LLMModel           string  `toml:"llm_model"`
	LLMTemperature     float32 `toml:"llm_temperature"`
	LLMMaxTokens       int     `toml:"llm_max_tokens"`
	LLMTimeoutSeconds  int     `toml:"llm_timeout_seconds"`
	LLMBaseURL         string  `toml:"llm_base_url"`
	LLMAzureEndpoint   string  `toml:"llm_azure_endpoint"`
	LLMAzureAPIVersion string  `toml:"llm_azure_api_version"`

	// coach banner cache: "redis" or "memory"
	CoachCacheBackend   string `toml:"coach_cache_backend"`
	CoachCacheSizeBytes int    `toml:"coach_cache_size_bytes"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development", "ddev", "dockerdev":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.LLMModel == "" {
		c.LLMModel = "gpt-4o-mini"
	}
	if c.LLMTemperature == 0 {
		c.LLMTemperature = 0.2
	}
	if c.LLMTimeoutSeconds <= 0 {
		c.LLMTimeoutSeconds = 60
	}
	if c.CoachCacheBackend == "" {
		c.CoachCacheBackend = "redis"
	}
	if c.CoachCacheSizeBytes <= 0 {
		c.CoachCacheSizeBytes = 10 * 1024 * 1024
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}
