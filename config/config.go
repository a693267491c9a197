package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Store selects the backing implementation of the mock API repositories.
type Store string

const (
	StoreMemory Store = "memory"
	StoreMySQL  Store = "mysql"
	StoreMongo  Store = "mongo"
)

// Config is read once at startup and handed to every component that needs it.
type Config struct {
	Port           string        `yaml:"port"`
	APIBaseURL     string        `yaml:"api_base_url"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogLevel       string        `yaml:"log_level"`

	Store    Store          `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Mongo    MongoConfig    `yaml:"mongo"`
}

type DatabaseConfig struct {
	URL  string `yaml:"url"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Name string `yaml:"name"`
	Seed bool   `yaml:"seed"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

func defaults() Config {
	return Config{
		Port:           "8080",
		CORSOrigins:    []string{"*"},
		RequestTimeout: 10 * time.Second,
		LogLevel:       "info",
		Store:          StoreMemory,
		Database: DatabaseConfig{
			User: "root",
			Host: "127.0.0.1",
			Port: "3306",
			Name: "rental_db",
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "rental",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and finally the environment. Environment values win.
func Load() (*Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	switch cfg.Store {
	case StoreMemory, StoreMySQL, StoreMongo:
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.APIBaseURL, "API_BASE_URL")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); raw != "" {
		cfg.CORSOrigins = ParseOrigins(raw)
	}

	if raw := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	if raw := strings.TrimSpace(os.Getenv("REVIEW_STORE")); raw != "" {
		cfg.Store = Store(strings.ToLower(raw))
	}

	// MYSQL_URL takes precedence over DATABASE_URL, same as the DB_* parts below it.
	if raw := strings.TrimSpace(os.Getenv("MYSQL_URL")); raw != "" {
		cfg.Database.URL = raw
	} else {
		setString(&cfg.Database.URL, "DATABASE_URL")
	}
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Pass, "DB_PASS")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.Name, "DB_NAME")
	if raw := strings.TrimSpace(os.Getenv("DB_SEED")); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("DB_SEED: %w", err)
		}
		cfg.Database.Seed = seed
	}

	setString(&cfg.Mongo.URI, "MONGO_URI")
	setString(&cfg.Mongo.Database, "MONGO_DB")
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// ParseOrigins splits a comma separated origin list. An empty list means "*".
func ParseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// AllowCredentials is false whenever the wildcard origin is configured.
func (c *Config) AllowCredentials() bool {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return false
		}
	}
	return true
}
