package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// Storage backend names accepted by storageBackend.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	APIBaseURL     string `yaml:"apiBaseURL"`
	AdminBaseURL   string `yaml:"adminBaseURL"`
	LogLevel       string `yaml:"logLevel"`
	StorageBackend string `yaml:"storageBackend"`
	StoragePath    string `yaml:"storagePath"`
	RedisAddr      string `yaml:"redisAddr"`
	RedisPassword  string `yaml:"redisPassword"`
}

// Load reads config from path (defaults to config.yaml), then applies
// environment overrides and validates the result.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if v := os.Getenv("STOREFRONT_API_URL"); v != "" {
		cfg.APIBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("STOREFRONT_ADMIN_URL"); v != "" {
		cfg.AdminBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("STOREFRONT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("STOREFRONT_STORAGE"); v != "" {
		cfg.StorageBackend = strings.TrimSpace(v)
	}
	if v := os.Getenv("STOREFRONT_STORAGE_PATH"); v != "" {
		cfg.StoragePath = strings.TrimSpace(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = StorageFile
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return errors.New("config: apiBaseURL is required (set in config.yaml or STOREFRONT_API_URL)")
	}
	switch cfg.StorageBackend {
	case StorageMemory:
	case StorageFile, StorageSQLite:
		if strings.TrimSpace(cfg.StoragePath) == "" {
			return fmt.Errorf("config: storagePath is required for the %s backend", cfg.StorageBackend)
		}
	case StorageRedis:
		if strings.TrimSpace(cfg.RedisAddr) == "" {
			return errors.New("config: redisAddr is required for the redis backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", cfg.StorageBackend)
	}
	return nil
}
