package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the service
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Display    DisplayConfig    `mapstructure:"display"`
}

type DatabaseConfig struct {
	Driver         string         `mapstructure:"driver"`
	Postgres       PostgresConfig `mapstructure:"postgres"`
	SQLitePath     string         `mapstructure:"sqlite_path"`
	ConnectRetries int            `mapstructure:"connect_retries"`
	ConnectTimeout time.Duration  `mapstructure:"connect_timeout"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Addr returns host:port for the redis client.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MonitoringConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	Namespace string `mapstructure:"namespace"`
}

type DisplayConfig struct {
	Language string `mapstructure:"language"`
}

// Tag returns the parsed display language. Load has already validated it.
func (d DisplayConfig) Tag() language.Tag {
	tag, err := language.Parse(d.Language)
	if err != nil {
		return language.English
	}
	return tag
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load initializes configuration from a .env file, environment variables and
// an optional config.yaml. Paths are searched for config.yaml in order;
// without paths ./config is used.
func Load(paths ...string) (*Config, error) {
	// a missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("W4B")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Load config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.sqlite_path", "stockkarte.db")
	v.SetDefault("database.connect_retries", 5)
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.user", "w4b")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.dbname", "w4b_app")
	v.SetDefault("database.postgres.sslmode", "disable")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")

	// Monitoring defaults
	v.SetDefault("monitoring.log_level", "info")
	v.SetDefault("monitoring.namespace", "stockkarte")

	v.SetDefault("display.language", "en")
}

func validateConfig(config *Config) error {
	db := config.Database
	switch db.Driver {
	case DriverPostgres:
		if db.Postgres.Host == "" {
			return fmt.Errorf("postgres host is required")
		}
		if db.Postgres.DBName == "" {
			return fmt.Errorf("postgres dbname is required")
		}
	case DriverSQLite:
		if db.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required")
		}
	default:
		return fmt.Errorf("unknown database driver %q", db.Driver)
	}
	if db.ConnectRetries < 0 {
		return fmt.Errorf("database connect_retries must not be negative")
	}
	if db.ConnectTimeout <= 0 {
		return fmt.Errorf("database connect_timeout must be positive")
	}

	if config.Redis.Enabled {
		if config.Redis.Host == "" {
			return fmt.Errorf("redis host is required when redis is enabled")
		}
		if config.Redis.TTL <= 0 {
			return fmt.Errorf("redis ttl must be positive")
		}
	}

	if !slices.Contains(logLevels, config.Monitoring.LogLevel) {
		return fmt.Errorf("unknown log level %q", config.Monitoring.LogLevel)
	}
	if config.Monitoring.Namespace == "" {
		return fmt.Errorf("monitoring namespace is required")
	}
	if _, err := language.Parse(config.Display.Language); err != nil {
		return fmt.Errorf("invalid display language %q: %w", config.Display.Language, err)
	}
	return nil
}
