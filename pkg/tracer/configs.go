package tracer

import "os"

// Config defines the configuration structure for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this service in exported traces.
	//
	// This setting can be configured via:
	//   - Environment variable MARVIN_TRACER_SERVICE_NAME
	//
	// Default: "marvin"
	ServiceName string `yaml:"service_name" envconfig:"MARVIN_TRACER_SERVICE_NAME"`

	// AppEnv tags every span with the deployment environment, for
	// example "development" or "production".
	//
	// This setting can be configured via:
	//   - Environment variable MARVIN_APP_ENV
	//
	// Default: "development"
	AppEnv string `yaml:"app_env" envconfig:"MARVIN_APP_ENV"`

	// EnableExport controls whether spans are shipped to an OTLP HTTP
	// collector. The collector endpoint is taken from the standard
	// OTEL_EXPORTER_OTLP_* environment variables. When false, spans are
	// created but never exported.
	//
	// This setting can be configured via:
	//   - Environment variable MARVIN_TRACER_ENABLE_EXPORT
	//
	// Default: false
	EnableExport bool `yaml:"enable_export" envconfig:"MARVIN_TRACER_ENABLE_EXPORT"`
}

// NewConfig reads the tracer configuration from the environment.
func NewConfig() Config {
	return Config{
		ServiceName:  getenvDefault("MARVIN_TRACER_SERVICE_NAME", "marvin"),
		AppEnv:       getenvDefault("MARVIN_APP_ENV", "development"),
		EnableExport: os.Getenv("MARVIN_TRACER_ENABLE_EXPORT") == "true",
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
