package artifacts

import (
	"os"
)

type Config struct {
	// Enabled turns the cache on. The loaders work without it; every
	// fetch then goes straight to the network.
	Enabled bool

	// Endpoint of the MinIO/S3 server, e.g. "localhost:9000".
	Endpoint string

	AccessKeyID     string
	SecretAccessKey string

	// UseSSL selects https for the endpoint.
	UseSSL bool

	// Bucket holding the cached pages.
	Bucket string
}

// NewConfig reads from environment (no extra deps).
func NewConfig() *Config {
	return &Config{
		Enabled:         os.Getenv("MARVIN_ARTIFACTS_ENDPOINT") != "",
		Endpoint:        os.Getenv("MARVIN_ARTIFACTS_ENDPOINT"),
		AccessKeyID:     os.Getenv("MARVIN_ARTIFACTS_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("MARVIN_ARTIFACTS_SECRET_KEY"),
		UseSSL:          os.Getenv("MARVIN_ARTIFACTS_USE_SSL") == "true",
		Bucket:          getenvDefault("MARVIN_ARTIFACTS_BUCKET", "marvin-pages"),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
