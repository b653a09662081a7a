package flows

import (
	"go.uber.org/fx"

	"github.com/jmfajardod/marvin/pkg/keywords"
	"github.com/jmfajardod/marvin/pkg/loaders"
	"github.com/jmfajardod/marvin/pkg/logger"
	"github.com/jmfajardod/marvin/pkg/metrics"
	"github.com/jmfajardod/marvin/pkg/settings"
	"github.com/jmfajardod/marvin/pkg/tracer"
	"github.com/jmfajardod/marvin/pkg/vectorstore"
)

// FXModule defines the Fx module for the knowledge-refresh flow.
var FXModule = fx.Module("flows",
	fx.Provide(newRefresherFromParts),
)

func newRefresherFromParts(
	loaderSet []loaders.Loader,
	store *vectorstore.DocumentStore,
	extractor keywords.Extractor,
	s *settings.Settings,
	m *metrics.Metrics,
	t *tracer.Tracer,
	log *logger.Logger,
) *Refresher {
	return NewRefresher(loaderSet, store, extractor, s, m, t, log)
}
