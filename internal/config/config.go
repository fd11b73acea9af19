package config

import (
	"fmt"
	"strings"
	"time"

	libconfig "parkmobile/libs/config"
)

// Storage backends for the token pair.
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config defines client configuration.
type Config struct {
	API struct {
		BaseURL        string `yaml:"baseUrl" env:"PARKMOBILE_API_URL"`
		TimeoutSeconds int    `yaml:"timeoutSeconds" env:"PARKMOBILE_HTTP_TIMEOUT"`
	} `yaml:"api"`
	Storage struct {
		Backend string `yaml:"backend" env:"PARKMOBILE_STORAGE_BACKEND"`
		Path    string `yaml:"path" env:"PARKMOBILE_TOKEN_PATH"`
	} `yaml:"storage"`
	Redis struct {
		Addr      string `yaml:"addr" env:"PARKMOBILE_REDIS_ADDR"`
		Password  string `yaml:"password" env:"PARKMOBILE_REDIS_PASSWORD"`
		KeyPrefix string `yaml:"keyPrefix" env:"PARKMOBILE_REDIS_PREFIX"`
	} `yaml:"redis"`
}

// Load configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.API.BaseURL = "http://localhost:3000/api"
	cfg.API.TimeoutSeconds = 10
	cfg.Storage.Backend = StorageFile

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return nil, fmt.Errorf("config: api base url required")
	}

	switch cfg.Storage.Backend {
	case StorageFile, StorageMemory:
	case StorageRedis:
		if strings.TrimSpace(cfg.Redis.Addr) == "" {
			return nil, fmt.Errorf("config: redis addr required for redis storage")
		}
	default:
		return nil, fmt.Errorf("config: unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

// HTTPTimeout returns http client timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
