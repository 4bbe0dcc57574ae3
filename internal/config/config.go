package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
	Session SessionConfig `yaml:"session"`
	Rewards RewardsConfig `yaml:"rewards"`
	Auth    AuthConfig    `yaml:"auth"`
	Exports ExportConfig  `yaml:"exports"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type StorageConfig struct {
	// Backend: memory, redis или sqlite
	Backend  string       `yaml:"backend"`
	Failover bool         `yaml:"failover"`
	Redis    RedisConfig  `yaml:"redis"`
	SQLite   SQLiteConfig `yaml:"sqlite"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type SessionConfig struct {
	TTLDays int `yaml:"ttl_days"`
}

// RewardsConfig sets the coin amounts credited for engagement.
type RewardsConfig struct {
	BlogCreated      int64 `yaml:"blog_created"`
	BlogComment      int64 `yaml:"blog_comment"`
	ItineraryCreated int64 `yaml:"itinerary_created"`
	QueryCreated     int64 `yaml:"query_created"`
	QueryResponse    int64 `yaml:"query_response"`
}

type AuthConfig struct {
	LoginRateLimit  int `yaml:"login_rate_limit"`
	LoginRateWindow int `yaml:"login_rate_window"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

func Load(configPath string) (*Config, error) {
	// Загружаем .env файл если существует
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Предварительная замена переменных окружения в YAML
	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "memory":
	case "redis":
		if c.Storage.Redis.Address == "" {
			return fmt.Errorf("storage.redis.address is required for redis backend")
		}
	case "sqlite":
		if c.Storage.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required for sqlite backend")
		}
	default:
		return fmt.Errorf("unknown storage backend: %q", c.Storage.Backend)
	}

	if c.Session.TTLDays < 1 {
		return fmt.Errorf("session.ttl_days must be positive")
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = "sqlite"
	}
	if c.Storage.SQLite.Path == "" && c.Storage.Backend == "sqlite" {
		c.Storage.SQLite.Path = "data/wayfarer.db"
	}
	if c.Session.TTLDays == 0 {
		c.Session.TTLDays = 7
	}
	if c.Rewards.BlogCreated == 0 {
		c.Rewards.BlogCreated = 20
	}
	if c.Rewards.BlogComment == 0 {
		c.Rewards.BlogComment = 5
	}
	if c.Rewards.ItineraryCreated == 0 {
		c.Rewards.ItineraryCreated = 15
	}
	if c.Rewards.QueryCreated == 0 {
		c.Rewards.QueryCreated = 5
	}
	if c.Rewards.QueryResponse == 0 {
		c.Rewards.QueryResponse = 10
	}
	if c.Auth.LoginRateLimit == 0 {
		c.Auth.LoginRateLimit = 10
	}
	if c.Auth.LoginRateWindow == 0 {
		c.Auth.LoginRateWindow = 60
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
}
