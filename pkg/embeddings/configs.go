package embeddings

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Endpoint is the base URL of an OpenAI-compatible embeddings API.
	// The client appends /embeddings itself.
	Endpoint string

	// APIKey authenticates against the embeddings API.
	APIKey string

	// Model names the embedding model.
	Model string

	// Dimensions is the vector size the model produces. The vector store
	// uses it when creating collections.
	Dimensions int

	// BatchSize caps how many texts one request may carry.
	BatchSize int

	// HTTPTimeoutS is the HTTP timeout in seconds (default 30).
	HTTPTimeoutS int
}

// NewConfig reads from environment (no extra deps).
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("MARVIN_EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	dimensions := 1536
	if v := os.Getenv("MARVIN_EMBEDDING_DIMENSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dimensions = n
		}
	}

	batch := 96
	if v := os.Getenv("MARVIN_EMBEDDING_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			batch = n
		}
	}

	return &Config{
		Endpoint:     getenvDefault("MARVIN_EMBEDDING_ENDPOINT", "https://api.openai.com/v1"),
		APIKey:       os.Getenv("MARVIN_EMBEDDING_API_KEY"),
		Model:        getenvDefault("MARVIN_EMBEDDING_MODEL", "text-embedding-ada-002"),
		Dimensions:   dimensions,
		BatchSize:    batch,
		HTTPTimeoutS: timeout,
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embeddings: missing MARVIN_EMBEDDING_ENDPOINT")
	}
	if c.APIKey == "" {
		return fmt.Errorf("embeddings: missing MARVIN_EMBEDDING_API_KEY")
	}
	return nil
}
