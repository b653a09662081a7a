package vectorstore

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/jmfajardod/marvin/pkg/embeddings"
	"github.com/jmfajardod/marvin/pkg/logger"
)

// FXModule defines the Fx module for the Qdrant-backed document store.
//
// The module:
//  1. Provides the client factory, making the connection available to
//     other components.
//  2. Provides NewDocumentStore, which wraps the client into the
//     higher-level store abstraction.
//  3. Invokes RegisterLifecycle to close the connection on shutdown.
//
// Dependencies required by this module: a *Config, the embeddings client
// and the shared logger.
var FXModule = fx.Module("vectorstore",
	fx.Provide(
		NewConfig,
		newClientFromLogger,
		newStoreFromLogger,
	),
	fx.Invoke(RegisterLifecycle),
)

func newClientFromLogger(cfg *Config, log *logger.Logger) (*Client, error) {
	return NewClient(cfg, log)
}

func newStoreFromLogger(client *Client, embedder *embeddings.Client, log *logger.Logger) (*DocumentStore, error) {
	return NewDocumentStore(client, embedder, log)
}

// RegisterLifecycle closes the Qdrant connection on shutdown.
func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			once.Do(client.Close)
			return nil
		},
	})
}
