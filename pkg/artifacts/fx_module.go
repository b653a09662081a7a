package artifacts

import (
	"go.uber.org/fx"

	"github.com/jmfajardod/marvin/pkg/logger"
)

// FXModule defines the Fx module for the artifact store.
//
// The store is optional: when no endpoint is configured the module
// provides a nil *Store and the loaders fetch straight from the network.
var FXModule = fx.Module("artifacts",
	fx.Provide(
		NewConfig,
		newOptionalStore,
	),
)

func newOptionalStore(cfg *Config, log *logger.Logger) (*Store, error) {
	if !cfg.Enabled {
		log.Debug("Artifact store disabled", nil)
		return nil, nil
	}
	return NewStore(cfg, log)
}
