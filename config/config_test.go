package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
http:
  address: ":8081"
grpc:
  address: ":9091"
database:
  host: localhost
  port: 5432
  user: airlines
  password: secret
  name: airlines
kafka:
  brokers: ["localhost:9092"]
  orders_topic: orders
search:
  rate_limit_per_minute: 20
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.Equal(t, ":9091", cfg.GRPC.Address)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 20, cfg.Search.RateLimitPerMinute)
	assert.Equal(t, 30, cfg.Flights.CacheTTLSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "host=localhost port=5432 user=airlines password=secret dbname=airlines sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	t.Setenv("HTTP_ADDRESS", ":7000")
	t.Setenv("SEARCH_RATE_LIMIT_PER_MINUTE", "5")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTP.Address)
	assert.Equal(t, 5, cfg.Search.RateLimitPerMinute)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("http: ["))
	assert.Error(t, err)
}
