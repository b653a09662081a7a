package settings

import (
	"go.uber.org/fx"
)

// FXModule defines the Fx module for the settings package.
//
// It provides the process-wide *Settings object, loaded once at startup
// from MARVIN_SETTINGS_PATH plus the environment, together with the
// logger configuration derived from it.
var FXModule = fx.Module("settings",
	fx.Provide(
		NewSettings,
		NewLoggerConfig,
	),
)
