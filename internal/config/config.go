package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces every environment variable consumed by the service,
// e.g. ENERGIA_HTTP_ADDR overrides the http_addr key.
const envPrefix = "ENERGIA_"

// Config holds all service settings, populated from defaults overlaid with
// environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DefaultCSV is the bundled centrales dataset loaded at startup: a local
	// path or an HTTP URL.
	DefaultCSV   string
	FetchTimeout time.Duration

	// PatternsPath is the JSON file persisting user-edited ownership
	// classification patterns.
	PatternsPath string

	// Kafka publishing of normalized records, disabled unless brokers are
	// configured.
	KafkaBrokers   []string
	KafkaSinkTopic string
	KafkaEnabled   bool
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"http_addr":        ":8080",
		"log_level":        "info",
		"log_format":       "json",
		"shutdown_timeout": "10s",
		"default_csv":      "data/centrales.csv",
		"fetch_timeout":    "10s",
		"patterns_path":    "data/patterns.json",
		"kafka_brokers":    "",
		"kafka_sink_topic": "plant-records",
		"kafka_enabled":    "",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	shutdownTimeout := k.Duration("shutdown_timeout")
	if shutdownTimeout <= 0 {
		return nil, errors.New("invalid ENERGIA_SHUTDOWN_TIMEOUT")
	}
	fetchTimeout := k.Duration("fetch_timeout")
	if fetchTimeout <= 0 {
		return nil, errors.New("invalid ENERGIA_FETCH_TIMEOUT")
	}

	brokers := splitNonEmpty(k.String("kafka_brokers"))
	kafkaEnabled := len(brokers) > 0
	if v := k.String("kafka_enabled"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        k.String("http_addr"),
		LogLevel:        k.String("log_level"),
		LogFormat:       k.String("log_format"),
		ShutdownTimeout: shutdownTimeout,
		DefaultCSV:      k.String("default_csv"),
		FetchTimeout:    fetchTimeout,
		PatternsPath:    k.String("patterns_path"),
		KafkaBrokers:    brokers,
		KafkaSinkTopic:  k.String("kafka_sink_topic"),
		KafkaEnabled:    kafkaEnabled,
	}

	if cfg.DefaultCSV == "" {
		return nil, errors.New("ENERGIA_DEFAULT_CSV is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("ENERGIA_KAFKA_ENABLED is true but ENERGIA_KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("ENERGIA_KAFKA_SINK_TOPIC is required when Kafka is enabled")
	}

	return cfg, nil
}

// splitNonEmpty splits a comma-separated list, dropping empty items.
func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
