package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Sheet  SheetConfig
	Log    LogConfig
	CORS   CORSConfig
	Quote  QuoteConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// SheetConfig holds remote spreadsheet sync settings.
type SheetConfig struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	MaxBodyMB    int64         `mapstructure:"max_body_mb"`
}

// QuoteConfig holds quotation session settings.
type QuoteConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the AIRQUOTE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AIRQUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "airquote")
	v.SetDefault("db.password", "airquote_secret")
	v.SetDefault("db.name", "airquote_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Sheet sync defaults
	v.SetDefault("sheet.fetch_timeout", "30s")
	v.SetDefault("sheet.max_body_mb", 10)

	// Quote defaults
	v.SetDefault("quote.session_ttl", "12h")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "AIRQUOTE_SERVER_PORT",
		"server.read_timeout":  "AIRQUOTE_SERVER_READ_TIMEOUT",
		"server.write_timeout": "AIRQUOTE_SERVER_WRITE_TIMEOUT",
		"server.environment":   "AIRQUOTE_SERVER_ENVIRONMENT",
		"db.host":              "AIRQUOTE_DB_HOST",
		"db.port":              "AIRQUOTE_DB_PORT",
		"db.user":              "AIRQUOTE_DB_USER",
		"db.password":          "AIRQUOTE_DB_PASSWORD",
		"db.name":              "AIRQUOTE_DB_NAME",
		"db.sslmode":           "AIRQUOTE_DB_SSLMODE",
		"db.max_open":          "AIRQUOTE_DB_MAX_OPEN",
		"db.max_idle":          "AIRQUOTE_DB_MAX_IDLE",
		"sheet.fetch_timeout":  "AIRQUOTE_SHEET_FETCH_TIMEOUT",
		"sheet.max_body_mb":    "AIRQUOTE_SHEET_MAX_BODY_MB",
		"quote.session_ttl":    "AIRQUOTE_QUOTE_SESSION_TTL",
		"log.level":            "AIRQUOTE_LOG_LEVEL",
		"log.format":           "AIRQUOTE_LOG_FORMAT",
		"cors.allowed_origins": "AIRQUOTE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if AIRQUOTE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AIRQUOTE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Sheet = SheetConfig{
		FetchTimeout: v.GetDuration("sheet.fetch_timeout"),
		MaxBodyMB:    v.GetInt64("sheet.max_body_mb"),
	}
	cfg.Quote = QuoteConfig{
		SessionTTL: v.GetDuration("quote.session_ttl"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
