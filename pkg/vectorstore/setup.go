package vectorstore

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Logger defines the interface for logging operations in the vectorstore package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Client wraps the official Qdrant Go client.
//
// It manages connection lifecycle and configuration; the higher-level
// DocumentStore builds on it.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	logger  Logger
	started bool
}

// NewClient constructs and initializes a new Qdrant client and verifies
// connectivity with a health check.
func NewClient(cfg *Config, logger Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Connecting to Qdrant", nil, map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
	})

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("vectorstore: failed to initialize client: %w", err)
	}

	c := &Client{
		api:     api,
		cfg:     cfg,
		logger:  logger,
		started: true,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("vectorstore: health check failed: %w", err)
	}

	logger.Info("Qdrant client connected", nil)
	return c, nil
}

// healthCheck verifies the endpoint answers within a short deadline.
func (c *Client) healthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := c.api.HealthCheck(ctx); err != nil {
		return err
	}
	return nil
}

// Close shuts down the underlying gRPC connection.
func (c *Client) Close() {
	if !c.started {
		return
	}
	if err := c.api.Close(); err != nil {
		c.logger.Warn("Error closing Qdrant client", err)
	}
	c.started = false
}
