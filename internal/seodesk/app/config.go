package app

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	InviteRetention      time.Duration // Terminal invites older than this are purged, 0 disables (default: 90 days)
	DatabaseFile         string        // Path to SQLite database file (default: ./seodesk.db)
	FrontendURL          string        // Base of accept links and redirects (default: http://localhost:3000)

	Issuer      string        // Expected iss claim, empty accepts any
	Audience    []string      // Expected aud claim, comma separated, empty accepts any
	JWKSURL     string        // JWKS of the identity provider
	JWKSRefresh time.Duration // JWKS refresh interval (default: 15m)
	DevTokens   bool          // Enable the local dev signer, refused in prod

	MailProvider       string // log or ses (default: log)
	MailFrom           string // Sender address (default: no-reply@seodesk.local)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string        // (default: gpt-4o-mini)
	LLMTimeout    time.Duration // Per-call timeout (default: 2m)

	JobsBackend     string // memory or redis (default: memory)
	JobsWorkers     int    // (default: 4)
	JobsQueueSize   int    // Memory backend buffer (default: 256)
	JobsMaxAttempts int    // (default: 3)
	RedisURL        string
	JobsStream      string // (default: seodesk:jobs)
	JobsGroup       string // (default: seodesk)

	ScrapeTimeout time.Duration // (default: 30s)
}

func LoadConfig() Config {
	cfg := Config{
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		InviteRetention:      getEnvDurationOrDefault("INVITE_RETENTION", 90*24*time.Hour),
		DatabaseFile:         getEnvOrDefault("SEODESK_DATABASE_FILE", "seodesk.db"),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),

		Issuer:      os.Getenv("AUTH_ISSUER"),
		Audience:    splitList(os.Getenv("AUTH_AUDIENCE")),
		JWKSURL:     os.Getenv("AUTH_JWKS_URL"),
		JWKSRefresh: getEnvDurationOrDefault("AUTH_JWKS_REFRESH", 15*time.Minute),
		DevTokens:   getEnvBoolOrDefault("AUTH_DEV_TOKENS", false),

		MailProvider:       getEnvOrDefault("MAIL_PROVIDER", "log"),
		MailFrom:           getEnvOrDefault("MAIL_FROM", "no-reply@seodesk.local"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSSessionToken:    os.Getenv("AWS_SESSION_TOKEN"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		LLMTimeout:    getEnvDurationOrDefault("LLM_TIMEOUT", 2*time.Minute),

		JobsBackend:     getEnvOrDefault("JOBS_BACKEND", "memory"),
		JobsWorkers:     getEnvIntOrDefault("JOBS_WORKERS", 4),
		JobsQueueSize:   getEnvIntOrDefault("JOBS_QUEUE_SIZE", 256),
		JobsMaxAttempts: getEnvIntOrDefault("JOBS_MAX_ATTEMPTS", 3),
		RedisURL:        os.Getenv("REDIS_URL"),
		JobsStream:      getEnvOrDefault("JOBS_STREAM", "seodesk:jobs"),
		JobsGroup:       getEnvOrDefault("JOBS_GROUP", "seodesk"),

		ScrapeTimeout: getEnvDurationOrDefault("SCRAPE_TIMEOUT", 30*time.Second),
	}

	return cfg
}

// Validate rejects combinations the service cannot start with.
func (c Config) Validate() error {
	if c.DevTokens && c.Env == "prod" {
		return errors.New("AUTH_DEV_TOKENS cannot be enabled in prod")
	}
	if c.DevTokens && c.JWKSURL != "" {
		return errors.New("AUTH_DEV_TOKENS and AUTH_JWKS_URL are mutually exclusive")
	}
	if !c.DevTokens && c.JWKSURL == "" {
		return errors.New("AUTH_JWKS_URL is required unless AUTH_DEV_TOKENS is enabled")
	}

	switch c.MailProvider {
	case "log", "ses":
	default:
		return errors.New("MAIL_PROVIDER must be log or ses")
	}

	switch c.JobsBackend {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis jobs backend")
		}
	default:
		return errors.New("JOBS_BACKEND must be memory or redis")
	}
	return nil
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

	// Integer values are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
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
