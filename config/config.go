package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level wellness-engine.yaml configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Selection SelectionConfig `yaml:"selection"`
	AI        AIConfig        `yaml:"ai"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
	IdleTimeoutSec  int    `yaml:"idle_timeout_sec"`
}

type CacheConfig struct {
	RedisAddr  string `yaml:"redis_addr"` // empty = in-memory cache
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type RateLimitConfig struct {
	Capacity        int `yaml:"capacity"`
	RefillWindowSec int `yaml:"refill_window_sec"`
}

// SelectionConfig bounds the recommendation counts per call.
type SelectionConfig struct {
	EducationMin int `yaml:"education_min"`
	EducationMax int `yaml:"education_max"`
	OffersMax    int `yaml:"offers_max"`
}

type AIConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json | console
}

// Load reads a config file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config with sensible defaults for local runs.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeoutSec:  15,
			WriteTimeoutSec: 15,
			IdleTimeoutSec:  60,
		},
		Cache: CacheConfig{
			TTLMinutes: 5,
		},
		RateLimit: RateLimitConfig{
			Capacity:        30,
			RefillWindowSec: 60,
		},
		Selection: SelectionConfig{
			EducationMin: 3,
			EducationMax: 5,
			OffersMax:    3,
		},
		AI: AIConfig{
			Enabled:    false,
			Model:      "gpt-4o-mini",
			TimeoutSec: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c ServerConfig) ReadTimeout() time.Duration  { return time.Duration(c.ReadTimeoutSec) * time.Second }
func (c ServerConfig) WriteTimeout() time.Duration { return time.Duration(c.WriteTimeoutSec) * time.Second }
func (c ServerConfig) IdleTimeout() time.Duration  { return time.Duration(c.IdleTimeoutSec) * time.Second }
func (c CacheConfig) TTL() time.Duration           { return time.Duration(c.TTLMinutes) * time.Minute }
func (c RateLimitConfig) RefillWindow() time.Duration {
	return time.Duration(c.RefillWindowSec) * time.Second
}
func (c AIConfig) Timeout() time.Duration { return time.Duration(c.TimeoutSec) * time.Second }
