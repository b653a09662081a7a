package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/jmfajardod/marvin/pkg/logger"
)

// FXModule defines the Fx module for the OpenTelemetry tracer.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewConfig,
		newClientFromLogger,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

func newClientFromLogger(cfg Config, log *logger.Logger) *Tracer {
	return NewClient(cfg, log)
}

// RegisterTracerLifecycle flushes and shuts down the tracer provider on
// application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.tracer == nil {
				tracer.logger.Warn("tracer was nil during shutdown", nil, nil)
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
