package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/loancalc/internal/infrastructure/config"
)

var configKeys = []string{
	"SERVICE_NAME", "HTTP_PORT", "GRPC_PORT", "LOG_LEVEL", "LOG_FORMAT",
	"OTEL_EXPORTER_OTLP_ENDPOINT", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"GRPC_TLS_CERT_FILE", "GRPC_TLS_KEY_FILE", "GRPC_REFLECTION",
	"HTTP_REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

// isolate runs the test from an empty directory with every config variable
// cleared so neither the host environment nor a stray .env leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg := config.Load()
	assert.Equal(t, "loancalc", cfg.ServiceName)
	assert.Equal(t, 8090, cfg.HTTP.Port)
	assert.Equal(t, 9090, cfg.GRPC.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "loancalc.events", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.GRPC.TLSEnabled())
	assert.False(t, cfg.GRPC.Reflection)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Equal(t, ":8090", cfg.HTTPAddr())
	assert.Equal(t, ":9090", cfg.GRPCAddr())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("GRPC_REFLECTION", "true")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "750ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()
	assert.Equal(t, 8181, cfg.HTTP.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.GRPC.Reflection)
	assert.Equal(t, 750*time.Millisecond, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	isolate(t)
	t.Setenv("GRPC_PORT", "not-a-port")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := config.Load()
	assert.Equal(t, 9090, cfg.GRPC.Port)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("SERVICE_NAME")
	os.Unsetenv("KAFKA_TOPIC")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SERVICE_NAME=loancalc-dev\nKAFKA_TOPIC=dev.events\n"), 0o600))

	cfg := config.Load()
	assert.Equal(t, "loancalc-dev", cfg.ServiceName)
	assert.Equal(t, "dev.events", cfg.Kafka.Topic)
}

func TestConfig_Validate(t *testing.T) {
	isolate(t)
	base := config.Load()
	valid := func() config.Config { return base }

	t.Run("rejects out-of-range port", func(t *testing.T) {
		cfg := valid()
		cfg.HTTP.Port = 70000
		assert.ErrorContains(t, cfg.Validate(), "HTTP_PORT")
	})

	t.Run("rejects clashing ports", func(t *testing.T) {
		cfg := valid()
		cfg.GRPC.Port = cfg.HTTP.Port
		assert.ErrorContains(t, cfg.Validate(), "must differ")
	})

	t.Run("rejects half-configured TLS", func(t *testing.T) {
		cfg := valid()
		cfg.GRPC.TLSCertFile = "/etc/tls/server.pem"
		assert.ErrorContains(t, cfg.Validate(), "GRPC_TLS_CERT_FILE")
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := valid()
		cfg.HTTP.Port = 0
		cfg.ShutdownTimeout = 0
		err := cfg.Validate()
		assert.ErrorContains(t, err, "HTTP_PORT")
		assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
	})
}
