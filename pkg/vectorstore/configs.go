package vectorstore

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Host of the Qdrant gRPC endpoint.
	Host string

	// Port of the Qdrant gRPC endpoint (default 6334).
	Port int

	// APIKey authenticates against managed Qdrant; empty for local.
	APIKey string

	// UseTLS enables TLS on the gRPC channel.
	UseTLS bool

	// Collection is the name of the document collection.
	Collection string
}

// NewConfig reads from environment (no extra deps).
func NewConfig() *Config {
	port := 6334
	if v := os.Getenv("MARVIN_QDRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}

	return &Config{
		Host:       getenvDefault("MARVIN_QDRANT_HOST", "localhost"),
		Port:       port,
		APIKey:     os.Getenv("MARVIN_QDRANT_API_KEY"),
		UseTLS:     os.Getenv("MARVIN_QDRANT_USE_TLS") == "true",
		Collection: getenvDefault("MARVIN_QDRANT_COLLECTION", "marvin"),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("vectorstore: missing MARVIN_QDRANT_HOST")
	}
	if c.Collection == "" {
		return fmt.Errorf("vectorstore: missing MARVIN_QDRANT_COLLECTION")
	}
	return nil
}
