package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether event publishing is configured.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

type GRPCConfig struct {
	Port        int
	TLSCertFile string
	TLSKeyFile  string
	Reflection  bool
}

// TLSEnabled reports whether the gRPC server should terminate TLS.
func (g GRPCConfig) TLSEnabled() bool { return g.TLSCertFile != "" && g.TLSKeyFile != "" }

type HTTPConfig struct {
	Port           int
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	ServiceName     string
	HTTP            HTTPConfig
	GRPC            GRPCConfig
	Log             LogConfig
	OTLPEndpoint    string
	Kafka           KafkaConfig
	ShutdownTimeout time.Duration
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error
	if !validPort(c.HTTP.Port) {
		errs = append(errs, fmt.Errorf("HTTP_PORT %d out of range", c.HTTP.Port))
	}
	if !validPort(c.GRPC.Port) {
		errs = append(errs, fmt.Errorf("GRPC_PORT %d out of range", c.GRPC.Port))
	}
	if c.HTTP.Port == c.GRPC.Port {
		errs = append(errs, fmt.Errorf("HTTP_PORT and GRPC_PORT must differ, both are %d", c.HTTP.Port))
	}
	if (c.GRPC.TLSCertFile == "") != (c.GRPC.TLSKeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	if c.HTTP.RequestTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_REQUEST_TIMEOUT must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from the environment. A .env file in the working
// directory, when present, fills variables that are not already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServiceName: getEnv("SERVICE_NAME", "loancalc"),
		HTTP: HTTPConfig{
			Port:           getEnvInt("HTTP_PORT", 8090),
			RequestTimeout: getEnvDuration("HTTP_REQUEST_TIMEOUT", 5*time.Second),
		},
		GRPC: GRPCConfig{
			Port:        getEnvInt("GRPC_PORT", 9090),
			TLSCertFile: getEnv("GRPC_TLS_CERT_FILE", ""),
			TLSKeyFile:  getEnv("GRPC_TLS_KEY_FILE", ""),
			Reflection:  getEnvBool("GRPC_REFLECTION", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "loancalc.events"),
		},
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPC.Port)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

func validPort(p int) bool { return p > 0 && p <= 65535 }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
