// Command refresh-vectorstore rebuilds the documentation collection:
// it runs every configured loader, splits the results into excerpts and
// replaces the contents of the Qdrant collection.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/jmfajardod/marvin/pkg/artifacts"
	"github.com/jmfajardod/marvin/pkg/embeddings"
	"github.com/jmfajardod/marvin/pkg/flows"
	"github.com/jmfajardod/marvin/pkg/keywords"
	"github.com/jmfajardod/marvin/pkg/loaders"
	"github.com/jmfajardod/marvin/pkg/logger"
	"github.com/jmfajardod/marvin/pkg/metrics"
	"github.com/jmfajardod/marvin/pkg/settings"
	"github.com/jmfajardod/marvin/pkg/tracer"
	"github.com/jmfajardod/marvin/pkg/vectorstore"
)

func main() {
	var (
		refresher *flows.Refresher
		log       *logger.Logger
	)

	app := fx.New(
		logger.FXModule,
		settings.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		embeddings.FXModule,
		vectorstore.FXModule,
		artifacts.FXModule,
		keywords.FXModule,
		loaders.FXModule,
		flows.FXModule,
		fx.Populate(&refresher, &log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		os.Exit(1)
	}

	err := refresher.Run(ctx)
	if err != nil {
		log.Error("Refresh finished with errors", err)
	}

	if stopErr := app.Stop(context.Background()); stopErr != nil {
		log.Error("Shutdown failed", stopErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
