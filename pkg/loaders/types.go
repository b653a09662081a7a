package loaders

import (
	"context"

	"github.com/jmfajardod/marvin/pkg/documents"
)

// Loader pulls documents out of one documentation source. Implementations
// fetch and convert only; retry, caching policy and scheduling belong to
// the workflow layer running them.
type Loader interface {
	// Name identifies the loader in logs and metrics.
	Name() string

	// Load fetches the source and returns one document per page/file/
	// operation. A failed source returns an error; partial results are
	// allowed alongside a nil error only.
	Load(ctx context.Context) ([]documents.Document, error)
}

// Logger defines the interface for logging operations in the loaders package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}
