package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := LoadEnv("5000")

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "restaurants.json", cfg.Catalog.Path)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CatalogTTL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Nil(t, NewKafkaWriter(cfg.Kafka))
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv("5000")

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.NotNil(t, NewKafkaWriter(cfg.Kafka))
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "kitchen", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=kitchen sslmode=disable", cfg.DSN())
}
