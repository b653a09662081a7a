package embeddings

import (
	"go.uber.org/fx"
)

// FXModule defines the Fx module for the embeddings client.
var FXModule = fx.Module("embeddings",
	fx.Provide(
		NewConfig,
		NewClient,
	),
)
