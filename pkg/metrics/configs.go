package metrics

import "os"

// Default port for the metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"   → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// This setting can be configured via:
	//   - Environment variable MARVIN_METRICS_ADDRESS
	//
	// Default: ":9090"
	Address string `yaml:"address" envconfig:"MARVIN_METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// This setting can be configured via:
	//   - Environment variable MARVIN_METRICS_ENABLE_DEFAULT_COLLECTORS
	//
	// Default: true
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"MARVIN_METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName identifies the service exposing metrics. It is added
	// as a common label on every metric.
	ServiceName string `yaml:"service_name" envconfig:"MARVIN_METRICS_SERVICE_NAME"`
}

// NewConfig reads the metrics configuration from the environment.
func NewConfig() Config {
	return Config{
		Address:                 getenvDefault("MARVIN_METRICS_ADDRESS", DefaultMetricsAddress),
		EnableDefaultCollectors: os.Getenv("MARVIN_METRICS_ENABLE_DEFAULT_COLLECTORS") != "false",
		ServiceName:             getenvDefault("MARVIN_METRICS_SERVICE_NAME", "marvin"),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
