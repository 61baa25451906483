package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORE_BACKEND", "DATA_DIR", "EXPORT_DIR",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PREFIX",
		"KAFKA_BROKER", "KAFKA_TOPIC",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, "takeaway", cfg.RedisPrefix)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, "orders", cfg.KafkaTopic)
	assert.Empty(t, cfg.KafkaBroker)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("DATA_DIR", "/var/lib/takeaway")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("KAFKA_BROKER", "kafka:9092")

	cfg := Load()

	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "/var/lib/takeaway", cfg.DataDir)
	assert.Equal(t, "host=db port=6543 user=chef password=secret dbname=shop sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
	assert.Equal(t, "kafka:9092", cfg.KafkaBroker)
}

func TestNewKafkaWriter(t *testing.T) {
	assert.Nil(t, NewKafkaWriter(Config{}))

	writer := NewKafkaWriter(Config{KafkaBroker: "kafka:9092", KafkaTopic: "orders"})
	require.NotNil(t, writer)
	assert.Equal(t, "orders", writer.Topic)
	assert.Equal(t, "kafka:9092", writer.Addr.String())
}
