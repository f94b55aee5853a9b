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
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Billing BillingConfig
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

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BillingConfig holds invoice computation defaults for the company.
type BillingConfig struct {
	// DefaultState is the supplier state used when none is configured on
	// the company profile; drives the intra/inter-state split.
	DefaultState  string `mapstructure:"default_state"`
	RoundUpTo     int    `mapstructure:"round_up_to"`
	GSTEnabled    bool   `mapstructure:"gst_enabled"`
	InvoicePrefix string `mapstructure:"invoice_prefix"`
	SearchLimit   int    `mapstructure:"search_limit"`
}

// Load reads configuration from environment variables with the RAPIDBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RAPIDBILL")
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
	v.SetDefault("db.user", "rapidbill")
	v.SetDefault("db.password", "rapidbill_secret")
	v.SetDefault("db.name", "rapidbill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Billing defaults
	v.SetDefault("billing.default_state", "Delhi")
	v.SetDefault("billing.round_up_to", 0)
	v.SetDefault("billing.gst_enabled", true)
	v.SetDefault("billing.invoice_prefix", "INV")
	v.SetDefault("billing.search_limit", 8)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "RAPIDBILL_SERVER_PORT",
		"server.read_timeout":    "RAPIDBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "RAPIDBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":     "RAPIDBILL_SERVER_ENVIRONMENT",
		"db.host":                "RAPIDBILL_DB_HOST",
		"db.port":                "RAPIDBILL_DB_PORT",
		"db.user":                "RAPIDBILL_DB_USER",
		"db.password":            "RAPIDBILL_DB_PASSWORD",
		"db.name":                "RAPIDBILL_DB_NAME",
		"db.sslmode":             "RAPIDBILL_DB_SSLMODE",
		"db.max_open":            "RAPIDBILL_DB_MAX_OPEN",
		"db.max_idle":            "RAPIDBILL_DB_MAX_IDLE",
		"log.level":              "RAPIDBILL_LOG_LEVEL",
		"log.format":             "RAPIDBILL_LOG_FORMAT",
		"cors.allowed_origins":   "RAPIDBILL_CORS_ALLOWED_ORIGINS",
		"billing.default_state":  "RAPIDBILL_BILLING_DEFAULT_STATE",
		"billing.round_up_to":    "RAPIDBILL_BILLING_ROUND_UP_TO",
		"billing.gst_enabled":    "RAPIDBILL_BILLING_GST_ENABLED",
		"billing.invoice_prefix": "RAPIDBILL_BILLING_INVOICE_PREFIX",
		"billing.search_limit":   "RAPIDBILL_BILLING_SEARCH_LIMIT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RAPIDBILL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RAPIDBILL_SERVER_PORT") == "" {
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

	cfg.Billing = BillingConfig{
		DefaultState:  v.GetString("billing.default_state"),
		RoundUpTo:     v.GetInt("billing.round_up_to"),
		GSTEnabled:    v.GetBool("billing.gst_enabled"),
		InvoicePrefix: v.GetString("billing.invoice_prefix"),
		SearchLimit:   v.GetInt("billing.search_limit"),
	}

	return cfg, nil
}
