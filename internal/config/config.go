package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"airline-ops/tower/internal/constants"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tower/config.yaml",
	"/etc/tower/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "TOWER_CONFIG"

// DemoUsersEnvVar carries the demo account list as a JSON array. The list
// is structured, so it travels as one payload rather than flat env keys.
const DemoUsersEnvVar = "DEMO_USERS_JSON"

type Config struct {
	Environment string         `koanf:"environment"`
	Server      ServerConfig   `koanf:"server"`
	Database    DatabaseConfig `koanf:"database"`
	Redis       RedisConfig    `koanf:"redis"`
	Auth        AuthConfig     `koanf:"auth"`
	Booking     BookingConfig  `koanf:"booking"`
	DemoUsers   []DemoUser     `koanf:"demo_users"`
}

type ServerConfig struct {
	Port        int      `koanf:"port"`
	MetricsPort int      `koanf:"metrics_port"`
	CORSOrigins []string `koanf:"cors_origins"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

// DSN renders the Postgres connection string shared by sqlx and GORM.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
}

type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

type BookingConfig struct {
	DefaultTicketPrice float64 `koanf:"default_ticket_price"`
}

// DemoUser seeds the in-memory credential registry at startup.
type DemoUser struct {
	Username   string `koanf:"username" json:"username"`
	Password   string `koanf:"password" json:"password"`
	Role       string `koanf:"role" json:"role"`
	SSN        string `koanf:"ssn" json:"ssn"`
	EmployeeID string `koanf:"employee_id" json:"employee_id"`
	Name       string `koanf:"name" json:"name"`
	Email      string `koanf:"email" json:"email"`
}

func defaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 9090,
			CORSOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "postgres",
			Name:    "airline",
			SSLMode: "disable",
		},
		Redis: RedisConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    6379,
		},
		Auth: AuthConfig{
			JWTSecret: "dev-only-secret",
			TokenTTL:  constants.SessionTokenTTLHours * time.Hour,
		},
		Booking: BookingConfig{
			DefaultTicketPrice: 199.0,
		},
		DemoUsers: DefaultDemoUsers(),
	}
}

// DefaultDemoUsers returns the built-in demo accounts, one per role.
func DefaultDemoUsers() []DemoUser {
	return []DemoUser{
		{Username: "passenger", Password: "pass123", Role: "passenger", Name: "Passenger User"},
		{Username: "agent", Password: "agent123", Role: "agent", Name: "Agent User"},
		{Username: "crew", Password: "crew123", Role: "crew", Name: "Crew User"},
		{Username: "admin", Password: "admin123", Role: "admin", Name: "Admin User"},
	}
}

// Load builds the configuration in three layers with clear precedence:
// env vars > config file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TOWER_SERVER__PORT -> server.port, TOWER_AUTH__JWT_SECRET -> auth.jwt_secret
	envProvider := env.Provider("TOWER_", ".", func(s string) string {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "TOWER_")), "__", ".")
		// demo_users is a list of structs and cannot be expressed as a
		// flat env key; it is seeded from DEMO_USERS_JSON instead.
		if strings.HasPrefix(key, "demo_users") {
			return ""
		}
		return key
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if raw := os.Getenv(DemoUsersEnvVar); raw != "" {
		var users []DemoUser
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", DemoUsersEnvVar, err)
		}
		cfg.DemoUsers = users
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MetricsPort <= 0 || c.Server.MetricsPort > 65535 {
		return fmt.Errorf("server.metrics_port out of range: %d", c.Server.MetricsPort)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if c.Environment == "production" && c.Auth.JWTSecret == "dev-only-secret" {
		return fmt.Errorf("auth.jwt_secret must be overridden in production")
	}
	return nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
