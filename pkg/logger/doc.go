// Package logger provides structured logging for the marvin packages.
//
// It wraps Uber's Zap logger with a small fixed API (Info, Debug, Warn,
// Error, Fatal) taking a message, an optional error, and free-form field
// maps. Output is JSON to stderr with ISO8601 timestamps and the service
// name attached to every entry.
//
// Basic Usage:
//
//	import "github.com/jmfajardod/marvin/pkg/logger"
//
//	log := logger.NewLoggerClient(logger.Config{Level: "info"})
//
//	log.Info("Loader finished", nil, map[string]interface{}{
//		"loader":    "sitemap",
//		"documents": 42,
//	})
//
// The package exposes an Fx module (FXModule) that provides the logger and
// syncs buffered entries on shutdown.
package logger
