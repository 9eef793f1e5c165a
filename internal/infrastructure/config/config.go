package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backend names accepted in storage.backend
const (
	BackendMemory   = "memory"
	BackendTextFile = "textfile"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Log     LogConfig
	HTTP    HTTPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// StorageConfig selects and configures the inventory storage backend
type StorageConfig struct {
	Backend  string // memory, textfile, sqlite, postgres
	TextFile TextFileConfig
	SQLite   SQLiteConfig
	Postgres PostgresConfig
}

// TextFileConfig holds settings for the plain text file backend
type TextFileConfig struct {
	Path string
}

// SQLiteConfig holds settings for the SQLite backend
type SQLiteConfig struct {
	Path string
}

// PostgresConfig holds PostgreSQL connection settings
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodyBytes     int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with INVENTORY_ prefix (e.g., INVENTORY_STORAGE_BACKEND)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration like Load but reads the named config file
// instead of searching the default paths. An empty path means search.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			// An explicitly named config file must exist
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Storage: StorageConfig{
			Backend: v.GetString("storage.backend"),
			TextFile: TextFileConfig{
				Path: v.GetString("storage.textfile.path"),
			},
			SQLite: SQLiteConfig{
				Path: v.GetString("storage.sqlite.path"),
			},
			Postgres: PostgresConfig{
				Host:            v.GetString("storage.postgres.host"),
				Port:            v.GetInt("storage.postgres.port"),
				User:            v.GetString("storage.postgres.user"),
				Password:        v.GetString("storage.postgres.password"),
				DBName:          v.GetString("storage.postgres.dbname"),
				SSLMode:         v.GetString("storage.postgres.sslmode"),
				MaxOpenConns:    v.GetInt("storage.postgres.max_open_conns"),
				MaxIdleConns:    v.GetInt("storage.postgres.max_idle_conns"),
				ConnMaxLifetime: v.GetInt("storage.postgres.conn_max_lifetime"),
				ConnMaxIdleTime: v.GetInt("storage.postgres.conn_max_idle_time"),
			},
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodyBytes:     v.GetInt64("http.max_body_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "inventory"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendSQLite
	}
	if cfg.Storage.TextFile.Path == "" {
		cfg.Storage.TextFile.Path = "inventory.txt"
	}
	if cfg.Storage.SQLite.Path == "" {
		cfg.Storage.SQLite.Path = "inventory.db"
	}
	if cfg.Storage.Postgres.Host == "" {
		cfg.Storage.Postgres.Host = "localhost"
	}
	if cfg.Storage.Postgres.Port == 0 {
		cfg.Storage.Postgres.Port = 5432
	}
	if cfg.Storage.Postgres.User == "" {
		cfg.Storage.Postgres.User = "postgres"
	}
	if cfg.Storage.Postgres.DBName == "" {
		cfg.Storage.Postgres.DBName = "inventory"
	}
	if cfg.Storage.Postgres.SSLMode == "" {
		cfg.Storage.Postgres.SSLMode = "disable"
	}
	if cfg.Storage.Postgres.MaxOpenConns == 0 {
		cfg.Storage.Postgres.MaxOpenConns = 25
	}
	if cfg.Storage.Postgres.MaxIdleConns == 0 {
		cfg.Storage.Postgres.MaxIdleConns = 5
	}
	if cfg.Storage.Postgres.ConnMaxLifetime == 0 {
		cfg.Storage.Postgres.ConnMaxLifetime = 60
	}
	if cfg.Storage.Postgres.ConnMaxIdleTime == 0 {
		cfg.Storage.Postgres.ConnMaxIdleTime = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodyBytes == 0 {
		cfg.HTTP.MaxBodyBytes = 4 << 20 // 4MB, bulk imports arrive as one body
	}
	// CORS origins intentionally default to empty: cross-origin requests
	// stay blocked until explicitly configured.
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendTextFile, BackendSQLite, BackendPostgres:
	default:
		return fmt.Errorf("storage.backend must be one of memory, textfile, sqlite, postgres; got %q", c.Storage.Backend)
	}

	if c.Storage.Backend == BackendTextFile && c.Storage.TextFile.Path == "" {
		return fmt.Errorf("storage.textfile.path is required for the textfile backend")
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.SQLite.Path == "" {
		return fmt.Errorf("storage.sqlite.path is required for the sqlite backend")
	}

	if c.Storage.Backend == BackendPostgres {
		pg := c.Storage.Postgres
		if pg.MaxOpenConns <= 0 {
			return fmt.Errorf("storage.postgres.max_open_conns must be positive")
		}
		if pg.MaxIdleConns < 0 {
			return fmt.Errorf("storage.postgres.max_idle_conns cannot be negative")
		}
		if pg.MaxIdleConns > pg.MaxOpenConns {
			return fmt.Errorf("storage.postgres.max_idle_conns (%d) cannot exceed storage.postgres.max_open_conns (%d)",
				pg.MaxIdleConns, pg.MaxOpenConns)
		}

		if c.App.Env == "production" {
			if pg.Password == "" {
				return fmt.Errorf("storage.postgres.password is required in production")
			}
			if pg.SSLMode == "disable" {
				return fmt.Errorf("storage.postgres.sslmode cannot be 'disable' in production")
			}
		}
	}

	if c.App.Env == "production" {
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// DSN returns the PostgreSQL connection string with properly escaped values
func (p *PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   p.DBName,
	}
	q := u.Query()
	q.Set("sslmode", p.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
