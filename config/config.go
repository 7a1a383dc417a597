package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	ListStylePage   = "page"
	ListStyleReqres = "reqres"

	TokenModeStatic = "static"
	TokenModeJWT    = "jwt"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Host        string
	Port        string

	Storage  string
	DBUrl    string
	DataFile string

	ListStyle      string
	AllowedOrigins []string

	LoginEmail    string
	LoginPassword string
	TokenMode     string
	StaticToken   string
	JWTSecret     string
	TokenTTL      time.Duration

	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := getenv("GO_ENV", "development")

	// In production the environment is the only source
	if env != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: .env file couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Host:           getenv("HOST", "0.0.0.0"),
		Port:           getenv("PORT", "8000"),
		Storage:        strings.ToLower(getenv("STORAGE", StorageMemory)),
		DBUrl:          os.Getenv("DATABASE_URL"),
		DataFile:       os.Getenv("DATA_FILE"),
		ListStyle:      strings.ToLower(getenv("LIST_STYLE", ListStylePage)),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LoginEmail:     getenv("LOGIN_EMAIL", "eve.holt@reqres.in"),
		LoginPassword:  getenv("LOGIN_PASSWORD", "cityslicka"),
		TokenMode:      strings.ToLower(getenv("TOKEN_MODE", TokenModeStatic)),
		StaticToken:    getenv("STATIC_TOKEN", "QpwL5tke4Pnpja7X4"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DBUrl == "" {
			return errors.New("DATABASE_URL is required when STORAGE=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q (want %s or %s)", c.Storage, StorageMemory, StoragePostgres)
	}
	switch c.ListStyle {
	case ListStylePage, ListStyleReqres:
	default:
		return fmt.Errorf("unknown LIST_STYLE %q (want %s or %s)", c.ListStyle, ListStylePage, ListStyleReqres)
	}
	switch c.TokenMode {
	case TokenModeStatic:
		if c.StaticToken == "" {
			return errors.New("STATIC_TOKEN must not be empty when TOKEN_MODE=static")
		}
	case TokenModeJWT:
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required when TOKEN_MODE=jwt")
		}
	default:
		return fmt.Errorf("unknown TOKEN_MODE %q (want %s or %s)", c.TokenMode, TokenModeStatic, TokenModeJWT)
	}
	if c.LoginEmail == "" || c.LoginPassword == "" {
		return errors.New("LOGIN_EMAIL and LOGIN_PASSWORD must not be empty")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
