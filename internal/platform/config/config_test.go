package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"BEMYRIDER_ADDR", "DATABASE_URL", "REDIS_URL", "KAFKA_BROKERS", "TAX_DETAILS_CACHE_TTL", "BIRTHPLACE_FALLBACK_CODE", "RATE_LIMIT_DISABLED", "RATE_LIMIT_COMPUTE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "bemyrider.audit.fiscal", cfg.Kafka.AuditTopic)
	assert.Equal(t, DefaultTaxDetailsCacheTTL, cfg.TaxDetailsCacheTTL)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Empty(t, cfg.FiscalCode.FallbackPlaceCode)
	assert.False(t, cfg.RateLimit.Disabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 120, cfg.RateLimit.ComputePerWindow)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BEMYRIDER_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,,")
	t.Setenv("TAX_DETAILS_CACHE_TTL", "90s")
	t.Setenv("REDIS_POOL_SIZE", "not-a-number")
	t.Setenv("BIRTHPLACE_FALLBACK_CODE", "H501")
	t.Setenv("RATE_LIMIT_DISABLED", "true")
	t.Setenv("RATE_LIMIT_RECORDS", "5")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 90*time.Second, cfg.TaxDetailsCacheTTL)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, "H501", cfg.FiscalCode.FallbackPlaceCode)
	assert.True(t, cfg.RateLimit.Disabled)
	assert.Equal(t, 5, cfg.RateLimit.RecordsPerWindow)
}
