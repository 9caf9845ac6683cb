package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SecretKey string        // Required: HMAC secret used to sign session tokens
	Algorithm string        // Optional: HS256, HS384 or HS512 (default: HS256)
	TokenTTL  time.Duration // Optional: session token lifetime (default: 30m)
	Issuer    string        // Optional: iss claim of session tokens (default: spano)

	GeminiAPIKey     string        // Optional: without it the assistant answers 503
	GeminiModel      string        // Optional: model name (default: gemini-2.5-flash)
	AssistantTimeout time.Duration // Optional: per-call model timeout (default: 30s)

	DefaultUserName      string // Optional: seeded plain user
	DefaultUserPassword  string
	DefaultAdminName     string // Optional: seeded admin
	DefaultAdminPassword string

	WebhookSecret string // Optional: required X-Webhook-Secret value

	DatabaseFile     string // Optional: path to SQLite database file (default: ./spano.db)
	DatabaseMaxConns int    // Optional: pool size, 0 is unlimited (default: 0)
	PepperFile       string // Optional: path to the password pepper file (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	CookieSecure        bool          // Mark the session cookie Secure (default: false)
}

// LoadConfig reads the environment, after loading .env from the working
// directory when there is one. Variables already set win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		SecretKey: os.Getenv("SECRET_KEY"),
		Algorithm: strings.ToUpper(getEnvOrDefault("JWT_ALGORITHM", "HS256")),
		TokenTTL:  time.Duration(getEnvIntOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		Issuer:    getEnvOrDefault("ISSUER", "spano"),

		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		AssistantTimeout: getEnvDurationOrDefault("ASSISTANT_TIMEOUT", 30*time.Second),

		DefaultUserName:      os.Getenv("DEFAULT_USER_USERNAME"),
		DefaultUserPassword:  os.Getenv("DEFAULT_USER_PASSWORD"),
		DefaultAdminName:     os.Getenv("DEFAULT_ADMIN_USERNAME"),
		DefaultAdminPassword: os.Getenv("DEFAULT_ADMIN_PASSWORD"),

		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),

		DatabaseFile:     getEnvOrDefault("DATABASE_FILE", "spano.db"),
		DatabaseMaxConns: getEnvIntOrDefault("DATABASE_MAX_CONNS", 0),
		PepperFile:       getEnvOrDefault("PEPPER_FILE", "pepper"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		CookieSecure:        getEnvBoolOrDefault("COOKIE_SECURE", false),
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	switch c.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("JWT_ALGORITHM %q is not one of HS256, HS384, HS512", c.Algorithm))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}
	if c.DatabaseMaxConns < 0 {
		errs = append(errs, errors.New("DATABASE_MAX_CONNS must not be negative"))
	}
	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
