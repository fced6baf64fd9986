package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	stringutil "bemyrider/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string

	DatabaseURL string
	Redis       RedisConfig
	Kafka       KafkaConfig
	FiscalCode  FiscalCodeConfig
	RateLimit   RateLimitConfig

	// TaxDetailsCacheTTL bounds how long tax records stay in Redis.
	TaxDetailsCacheTTL time.Duration
}

// RedisConfig configures the optional Redis read-through cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional audit event sink.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// FiscalCodeConfig configures the calculator.
type FiscalCodeConfig struct {
	// BelfioreTablePath points at a YAML file extending the built-in table.
	BelfioreTablePath string
	// FallbackPlaceCode, when set, replaces unresolvable birth places instead
	// of rejecting them.
	FallbackPlaceCode string
}

// RateLimitConfig sets per-client request budgets. Buckets live in Redis
// when it is configured, otherwise in process memory.
type RateLimitConfig struct {
	Disabled         bool
	TrustProxy       bool
	Window           time.Duration
	ComputePerWindow int
	RecordsPerWindow int
}

// DefaultTaxDetailsCacheTTL keeps PII in Redis only briefly.
const DefaultTaxDetailsCacheTTL = 5 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("BEMYRIDER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:        addr,
		LogLevel:    envOr("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			AuditTopic: envOr("AUDIT_TOPIC", "bemyrider.audit.fiscal"),
		},
		FiscalCode: FiscalCodeConfig{
			BelfioreTablePath: os.Getenv("BELFIORE_TABLE_PATH"),
			FallbackPlaceCode: os.Getenv("BIRTHPLACE_FALLBACK_CODE"),
		},
		RateLimit: RateLimitConfig{
			Disabled:         envBool("RATE_LIMIT_DISABLED"),
			TrustProxy:       envBool("RATE_LIMIT_TRUST_PROXY"),
			Window:           envDuration("RATE_LIMIT_WINDOW", time.Minute),
			ComputePerWindow: envInt("RATE_LIMIT_COMPUTE", 120),
			RecordsPerWindow: envInt("RATE_LIMIT_RECORDS", 60),
		},
		TaxDetailsCacheTTL: envDuration("TAX_DETAILS_CACHE_TTL", DefaultTaxDetailsCacheTTL),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return stringutil.DedupeAndTrim(strings.Split(s, ","))
}
