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
	S3     S3Config
	Fetch  FetchConfig
	Parse  ParseConfig
	JWT    JWTConfig
	Auth   AuthConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings. Persistence of parse records
// is optional; with Enabled false the service runs stateless.
type DBConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
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

// S3Config holds AWS S3 settings for document sourcing and archival.
type S3Config struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	ArchivePrefix string `mapstructure:"archive_prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// FetchConfig holds settings for pulling documents from remote URLs.
type FetchConfig struct {
	TimeoutSecs   int      `mapstructure:"timeout_secs"`
	MaxFileSizeMB int64    `mapstructure:"max_file_size_mb"`
	AllowedPaths  []string `mapstructure:"allowed_paths"`
}

// MaxFileSizeBytes returns the download cap in bytes.
func (f *FetchConfig) MaxFileSizeBytes() int64 {
	return f.MaxFileSizeMB * 1024 * 1024
}

// ParseConfig holds document parsing settings.
type ParseConfig struct {
	MaxPages    int `mapstructure:"max_pages"`
	TimeoutSecs int `mapstructure:"timeout_secs"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// AuthConfig gates bearer-token authentication on the API.
type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
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

// Load reads configuration from environment variables with the POLISCHED_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POLISCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.enabled", false)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "polisched")
	v.SetDefault("db.password", "polisched_secret")
	v.SetDefault("db.name", "polisched_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "af-south-1")
	v.SetDefault("s3.bucket", "polisched-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.archive_prefix", "archive/")
	v.SetDefault("s3.presign_expiry", 3600)

	// Fetch defaults
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_file_size_mb", 50)
	v.SetDefault("fetch.allowed_paths", "")

	// Parse defaults
	v.SetDefault("parse.max_pages", 0)
	v.SetDefault("parse.timeout_secs", 60)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "24h")
	v.SetDefault("jwt.issuer", "polisched")

	// Auth defaults
	v.SetDefault("auth.enabled", false)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "POLISCHED_SERVER_PORT",
		"server.read_timeout":    "POLISCHED_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "POLISCHED_SERVER_WRITE_TIMEOUT",
		"server.environment":     "POLISCHED_SERVER_ENVIRONMENT",
		"db.enabled":             "POLISCHED_DB_ENABLED",
		"db.host":                "POLISCHED_DB_HOST",
		"db.port":                "POLISCHED_DB_PORT",
		"db.user":                "POLISCHED_DB_USER",
		"db.password":            "POLISCHED_DB_PASSWORD",
		"db.name":                "POLISCHED_DB_NAME",
		"db.sslmode":             "POLISCHED_DB_SSLMODE",
		"db.max_open":            "POLISCHED_DB_MAX_OPEN",
		"db.max_idle":            "POLISCHED_DB_MAX_IDLE",
		"s3.enabled":             "POLISCHED_S3_ENABLED",
		"s3.region":              "POLISCHED_S3_REGION",
		"s3.bucket":              "POLISCHED_S3_BUCKET",
		"s3.endpoint":            "POLISCHED_S3_ENDPOINT",
		"s3.access_key":          "POLISCHED_S3_ACCESS_KEY",
		"s3.secret_key":          "POLISCHED_S3_SECRET_KEY",
		"s3.archive_prefix":      "POLISCHED_S3_ARCHIVE_PREFIX",
		"s3.presign_expiry":      "POLISCHED_S3_PRESIGN_EXPIRY",
		"fetch.timeout_secs":     "POLISCHED_FETCH_TIMEOUT_SECS",
		"fetch.max_file_size_mb": "POLISCHED_FETCH_MAX_FILE_SIZE_MB",
		"fetch.allowed_paths":    "POLISCHED_FETCH_ALLOWED_PATHS",
		"parse.max_pages":        "POLISCHED_PARSE_MAX_PAGES",
		"parse.timeout_secs":     "POLISCHED_PARSE_TIMEOUT_SECS",
		"jwt.secret":             "POLISCHED_JWT_SECRET",
		"jwt.access_expiry":      "POLISCHED_JWT_ACCESS_EXPIRY",
		"jwt.issuer":             "POLISCHED_JWT_ISSUER",
		"auth.enabled":           "POLISCHED_AUTH_ENABLED",
		"log.level":              "POLISCHED_LOG_LEVEL",
		"log.format":             "POLISCHED_LOG_FORMAT",
		"cors.allowed_origins":   "POLISCHED_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if POLISCHED_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("POLISCHED_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Enabled:  v.GetBool("db.enabled"),
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Enabled:       v.GetBool("s3.enabled"),
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		ArchivePrefix: v.GetString("s3.archive_prefix"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Fetch = FetchConfig{
		TimeoutSecs:   v.GetInt("fetch.timeout_secs"),
		MaxFileSizeMB: v.GetInt64("fetch.max_file_size_mb"),
		AllowedPaths:  splitList(v.GetString("fetch.allowed_paths")),
	}
	cfg.Parse = ParseConfig{
		MaxPages:    v.GetInt("parse.max_pages"),
		TimeoutSecs: v.GetInt("parse.timeout_secs"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Auth = AuthConfig{
		Enabled: v.GetBool("auth.enabled"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
