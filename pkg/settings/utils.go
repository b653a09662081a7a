package settings

import (
	"github.com/jmfajardod/marvin/pkg/logger"
)

// NewLoggerConfig derives the logger configuration from the loaded settings.
func NewLoggerConfig(s *Settings) logger.Config {
	return logger.Config{Level: s.LogLevel}
}
