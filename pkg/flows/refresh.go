package flows

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jmfajardod/marvin/pkg/documents"
	"github.com/jmfajardod/marvin/pkg/keywords"
	"github.com/jmfajardod/marvin/pkg/loaders"
	"github.com/jmfajardod/marvin/pkg/metrics"
	"github.com/jmfajardod/marvin/pkg/settings"
	"github.com/jmfajardod/marvin/pkg/tracer"
)

// Store is the slice of the vector store the refresh flow needs: wipe
// the collection and add excerpts.
type Store interface {
	Reset(ctx context.Context) error
	Add(ctx context.Context, docs []documents.Document) (int, error)
}

// Logger defines the interface for logging operations in the flows package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Refresher rebuilds the knowledge collection: run every loader, split
// the documents into excerpts and replace the collection's contents.
type Refresher struct {
	loaders   []loaders.Loader
	store     Store
	extractor keywords.Extractor
	settings  *settings.Settings
	metrics   *metrics.Metrics
	tracer    *tracer.Tracer
	logger    Logger
}

func NewRefresher(
	loaderSet []loaders.Loader,
	store Store,
	extractor keywords.Extractor,
	s *settings.Settings,
	m *metrics.Metrics,
	t *tracer.Tracer,
	logger Logger,
) *Refresher {
	return &Refresher{
		loaders:   loaderSet,
		store:     store,
		extractor: extractor,
		settings:  s,
		metrics:   m,
		tracer:    t,
		logger:    logger,
	}
}

// Run executes one full refresh. Loaders run concurrently, bounded by
// the configured concurrency; a failed loader is logged and skipped so
// the other sources still land. The excerpts of all successful loaders
// replace the collection's previous contents. The error of every failed
// loader is joined into the returned error.
func (r *Refresher) Run(ctx context.Context) error {
	ctx, span := r.tracer.StartSpan(ctx, "refresh-vectorstore")
	defer span.End()

	started := time.Now()
	defer func() {
		r.metrics.RefreshDuration.Observe(time.Since(started).Seconds())
	}()

	var (
		mu       sync.Mutex
		excerpts []documents.Document
		failures []error
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.settings.Pipeline.LoaderConcurrency)

	for _, loader := range r.loaders {
		group.Go(func() error {
			docs, err := r.runLoader(groupCtx, loader)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// A failed source must not sink the other loaders, so
				// its error is collected instead of returned. Only a
				// dead context aborts the whole group.
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}
				failures = append(failures, fmt.Errorf("%s: %w", loader.Name(), err))
				return nil
			}
			excerpts = append(excerpts, docs...)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := r.store.Reset(ctx); err != nil {
		r.tracer.RecordErrorOnSpan(span, err)
		return fmt.Errorf("flows: reset collection: %w", err)
	}

	added, err := r.store.Add(ctx, excerpts)
	if err != nil {
		r.tracer.RecordErrorOnSpan(span, err)
		return fmt.Errorf("flows: add excerpts: %w", err)
	}

	r.metrics.ExcerptsIndexed.Add(float64(added))
	r.tracer.SetAttributes(span, map[string]interface{}{
		"excerpts": added,
		"loaders":  len(r.loaders),
		"failures": len(failures),
	})
	r.logger.Info("Knowledge refresh finished", nil, map[string]interface{}{
		"excerpts": added,
		"failures": len(failures),
		"elapsed":  time.Since(started).String(),
	})

	return errors.Join(failures...)
}

// runLoader loads one source and splits its documents into excerpts.
func (r *Refresher) runLoader(ctx context.Context, loader loaders.Loader) ([]documents.Document, error) {
	ctx, span := r.tracer.StartSpan(ctx, "run-loader")
	defer span.End()
	r.tracer.SetAttributes(span, map[string]interface{}{"loader": loader.Name()})

	docs, err := loader.Load(ctx)
	if err != nil {
		r.tracer.RecordErrorOnSpan(span, err)
		r.metrics.LoaderFailures.WithLabelValues(loader.Name()).Inc()
		r.logger.Error("Loader failed", err, map[string]interface{}{"loader": loader.Name()})
		return nil, err
	}

	r.metrics.DocumentsLoaded.WithLabelValues(loader.Name()).Add(float64(len(docs)))

	opts := documents.ExcerptOptions{
		ChunkTokens:  r.settings.Pipeline.ChunkTokens,
		ChunkOverlap: r.settings.Pipeline.ChunkOverlap,
		Keywords:     r.extractor.Extract,
	}

	var excerpts []documents.Document
	for _, doc := range docs {
		split, err := documents.ToExcerpts(doc, opts)
		if err != nil {
			return nil, fmt.Errorf("split %q: %w", doc.Metadata.Link, err)
		}
		excerpts = append(excerpts, split...)
	}

	r.logger.Info("Loader finished", nil, map[string]interface{}{
		"loader":    loader.Name(),
		"documents": len(docs),
		"excerpts":  len(excerpts),
	})
	return excerpts, nil
}
