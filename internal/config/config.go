// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backend selects which data-access and auth implementations the app runs on.
type Backend string

const (
	BackendFixture Backend = "fixture"
	BackendStore   Backend = "store"
)

type Config struct {
	Backend     Backend `mapstructure:"backend"`
	SeedOnStart bool    `mapstructure:"seed_on_start"`
	BaseURL     string  `mapstructure:"base_url"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // json|text
	} `mapstructure:"log"`

	Database struct {
		Driver          string        `mapstructure:"driver"` // postgres|mysql
		DSN             string        `mapstructure:"dsn"`
		Host            string        `mapstructure:"host"`
		Port            string        `mapstructure:"port"`
		User            string        `mapstructure:"user"`
		Password        string        `mapstructure:"password"`
		Name            string        `mapstructure:"name"`
		SSLMode         string        `mapstructure:"sslmode"`
		SearchPath      string        `mapstructure:"schema"`
		TablePrefix     string        `mapstructure:"table_prefix"`
		MaxOpenConns    int           `mapstructure:"max_open_conns"`
		MaxIdleConns    int           `mapstructure:"max_idle_conns"`
		ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
		LogLevel        string        `mapstructure:"log_level"` // silent|error|warn|info
	} `mapstructure:"database"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Session struct {
		Store string        `mapstructure:"store"` // memory|redis
		TTL   time.Duration `mapstructure:"ttl"`
	} `mapstructure:"session"`

	JWT struct {
		Secret       string        `mapstructure:"secret"`
		ExpiryPeriod time.Duration `mapstructure:"expiry_period"`
	} `mapstructure:"jwt"`

	Server struct {
		Port           string        `mapstructure:"port"`
		ReadTimeout    time.Duration `mapstructure:"read_timeout"`
		WriteTimeout   time.Duration `mapstructure:"write_timeout"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
		AllowedOrigins []string      `mapstructure:"allowed_origins"`
	} `mapstructure:"server"`

	Email struct {
		Provider string `mapstructure:"provider"` // log|sendgrid|smtp
		From     string `mapstructure:"from"`
		FromName string `mapstructure:"from_name"`
	} `mapstructure:"email"`

	Sendgrid struct {
		APIKey string `mapstructure:"api_key"`
		From   string `mapstructure:"from"`
	} `mapstructure:"sendgrid"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"smtp"`
}

// envBindings keeps the flat variable names deployments already use.
var envBindings = map[string]string{
	"backend":                    "BACKEND",
	"seed_on_start":              "SEED_ON_START",
	"base_url":                   "BASE_URL",
	"log.level":                  "LOG_LEVEL",
	"log.format":                 "LOG_FORMAT",
	"database.driver":            "DB_DRIVER",
	"database.dsn":               "DB_DSN",
	"database.host":              "DB_HOST",
	"database.port":              "DB_PORT",
	"database.user":              "DB_USER",
	"database.password":          "DB_PASSWORD",
	"database.name":              "DB_NAME",
	"database.sslmode":           "DB_SSLMODE",
	"database.schema":            "DB_SCHEMA",
	"database.table_prefix":      "DB_TABLE_PREFIX",
	"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"database.log_level":         "DB_LOG_LEVEL",
	"redis.addr":                 "REDIS_ADDR",
	"redis.password":             "REDIS_PASSWORD",
	"redis.db":                   "REDIS_DB",
	"session.store":              "SESSION_STORE",
	"session.ttl":                "SESSION_TTL",
	"jwt.secret":                 "JWT_SECRET",
	"jwt.expiry_period":          "JWT_EXPIRY_PERIOD",
	"server.port":                "SERVER_PORT",
	"server.read_timeout":        "SERVER_READ_TIMEOUT",
	"server.write_timeout":       "SERVER_WRITE_TIMEOUT",
	"server.request_timeout":     "SERVER_REQUEST_TIMEOUT",
	"server.allowed_origins":     "SERVER_ALLOWED_ORIGINS",
	"email.provider":             "EMAIL_PROVIDER",
	"email.from":                 "EMAIL_FROM",
	"email.from_name":            "EMAIL_FROM_NAME",
	"sendgrid.api_key":           "SENDGRID_API_KEY",
	"sendgrid.from":              "SENDGRID_FROM",
	"smtp.host":                  "SMTP_HOST",
	"smtp.port":                  "SMTP_PORT",
	"smtp.username":              "SMTP_USERNAME",
	"smtp.password":              "SMTP_PASSWORD",
}

// Load reads defaults, an optional file named by CONFIG_FILE, then the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("roofdesk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/roofdesk")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// insecureJWTSecret is a widely copied placeholder, refused for the store backend.
const insecureJWTSecret = "your-secret-key"

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", string(BackendFixture))
	v.SetDefault("seed_on_start", false)
	v.SetDefault("base_url", "http://localhost:8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "roofdesk")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.schema", "public")
	v.SetDefault("database.table_prefix", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.ttl", "24h")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry_period", "24h")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.request_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("email.provider", "log")
	v.SetDefault("email.from", "")
	v.SetDefault("email.from_name", "Taklaget Team")

	v.SetDefault("sendgrid.api_key", "")
	v.SetDefault("sendgrid.from", "")

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendFixture, BackendStore:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", BackendFixture, BackendStore, c.Backend)
	}

	if c.Backend == BackendStore {
		switch c.JWT.Secret {
		case "":
			return errors.New("jwt.secret must be set when backend is store")
		case insecureJWTSecret:
			return errors.New("jwt.secret is the well-known placeholder; set a real secret")
		}
	}

	switch strings.ToLower(c.Database.Driver) {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	switch c.Session.Store {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("redis.addr must be set when session.store is redis")
		}
	default:
		return fmt.Errorf("unsupported session store: %s", c.Session.Store)
	}

	switch c.Email.Provider {
	case "log":
	case "sendgrid":
		if c.Sendgrid.APIKey == "" {
			return errors.New("sendgrid.api_key must be set when email.provider is sendgrid")
		}
	case "smtp":
		if c.SMTP.Host == "" {
			return errors.New("smtp.host must be set when email.provider is smtp")
		}
	default:
		return fmt.Errorf("unsupported email provider: %s", c.Email.Provider)
	}
	return nil
}

// DSN returns the configured connection string, building one from the
// discrete settings when none is given.
func (c *Config) DSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	if strings.ToLower(c.Database.Driver) == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// EmailFrom returns the sender address for outgoing mail.
func (c *Config) EmailFrom() string {
	if c.Email.From != "" {
		return c.Email.From
	}
	return c.Sendgrid.From
}
