package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string
	DatabaseURL       string
	JWTSigningKey     string
	JWTIssuer         string
	AdminToken        string
	LogLevel          string
	EvaluationTimeout time.Duration
	Redis             RedisConfig
	Audit             AuditConfig
	RateLimit         RateLimitConfig
}

// RedisConfig configures the rule document cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	CacheTTL     time.Duration
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AuditConfig configures the Kafka audit sink. No brokers means audit events
// go to Postgres only.
type AuditConfig struct {
	Brokers []string
	Topic   string
}

// RateLimitConfig sets per-user request budgets per minute.
type RateLimitConfig struct {
	Disabled       bool
	ReadPerMinute  int
	BatchPerMinute int
}

const (
	defaultAddr              = ":8080"
	defaultCacheTTL          = 5 * time.Minute
	defaultEvaluationTimeout = 3 * time.Second
	defaultAuditTopic        = "survey-audit"
)

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; real
// environment variables win over it.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	cacheTTL, err := durationEnv("RULES_CACHE_TTL", defaultCacheTTL)
	if err != nil {
		return Server{}, err
	}
	evalTimeout, err := durationEnv("EVALUATION_TIMEOUT", defaultEvaluationTimeout)
	if err != nil {
		return Server{}, err
	}
	poolSize, err := intEnv("REDIS_POOL_SIZE", 10)
	if err != nil {
		return Server{}, err
	}

	readLimit, err := intEnv("RATE_LIMIT_READ_PER_MINUTE", 120)
	if err != nil {
		return Server{}, err
	}
	batchLimit, err := intEnv("RATE_LIMIT_BATCH_PER_MINUTE", 30)
	if err != nil {
		return Server{}, err
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:              stringEnv("SURVEYGATE_ADDR", defaultAddr),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSigningKey:     jwtSigningKey,
		JWTIssuer:         os.Getenv("JWT_ISSUER"),
		AdminToken:        os.Getenv("ADMIN_TOKEN"),
		LogLevel:          stringEnv("LOG_LEVEL", "info"),
		EvaluationTimeout: evalTimeout,
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			CacheTTL:     cacheTTL,
			PoolSize:     poolSize,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Audit: AuditConfig{
			Brokers: splitBrokers(os.Getenv("KAFKA_BROKERS")),
			Topic:   stringEnv("AUDIT_TOPIC", defaultAuditTopic),
		},
		RateLimit: RateLimitConfig{
			Disabled:       os.Getenv("RATE_LIMIT_DISABLED") == "true",
			ReadPerMinute:  readLimit,
			BatchPerMinute: batchLimit,
		},
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
