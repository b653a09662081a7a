package flows

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfajardod/marvin/pkg/documents"
	"github.com/jmfajardod/marvin/pkg/keywords"
	"github.com/jmfajardod/marvin/pkg/loaders"
	"github.com/jmfajardod/marvin/pkg/metrics"
	"github.com/jmfajardod/marvin/pkg/settings"
	"github.com/jmfajardod/marvin/pkg/tracer"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

type fakeLoader struct {
	name string
	docs []documents.Document
	err  error
}

func (l fakeLoader) Name() string { return l.name }

func (l fakeLoader) Load(context.Context) ([]documents.Document, error) {
	return l.docs, l.err
}

type fakeStore struct {
	calls []string
	added []documents.Document
	err   error
}

func (s *fakeStore) Reset(context.Context) error {
	s.calls = append(s.calls, "reset")
	return s.err
}

func (s *fakeStore) Add(_ context.Context, docs []documents.Document) (int, error) {
	s.calls = append(s.calls, "add")
	s.added = append(s.added, docs...)
	return len(docs), nil
}

func newTestRefresher(t *testing.T, loaderSet []fakeLoader, store *fakeStore) *Refresher {
	t.Helper()

	s := &settings.Settings{
		Pipeline: settings.Pipeline{
			ChunkTokens:       20,
			ChunkOverlap:      2,
			LoaderConcurrency: 2,
		},
	}
	m := metrics.NewMetrics(metrics.Config{Address: ":0", ServiceName: "test"})
	tr := tracer.NewClient(tracer.Config{ServiceName: "test", AppEnv: "test"}, nopLogger{})

	wrapped := make([]loaders.Loader, len(loaderSet))
	for i, l := range loaderSet {
		wrapped[i] = l
	}
	return NewRefresher(wrapped, store, keywords.NewFrequencyExtractor(keywords.Config{}), s, m, tr, nopLogger{})
}

func TestRefresherRun(t *testing.T) {
	doc := func(link, text string) documents.Document {
		return documents.Document{
			Text:     text,
			Metadata: documents.Metadata{Link: link, Title: "t", Source: "test"},
		}
	}

	t.Run("indexes excerpts from every loader", func(t *testing.T) {
		store := &fakeStore{}
		r := newTestRefresher(t, []fakeLoader{
			{name: "one", docs: []documents.Document{doc("a", "alpha beta gamma")}},
			{name: "two", docs: []documents.Document{doc("b", "delta epsilon zeta")}},
		}, store)

		err := r.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"reset", "add"}, store.calls, "collection is wiped before adding")
		assert.Len(t, store.added, 2)
		for _, excerpt := range store.added {
			assert.NotEmpty(t, excerpt.ID)
			assert.Contains(t, excerpt.Text, "excerpt from a document")
		}
	})

	t.Run("failed loader is skipped but reported", func(t *testing.T) {
		boom := errors.New("connection refused")
		store := &fakeStore{}
		r := newTestRefresher(t, []fakeLoader{
			{name: "good", docs: []documents.Document{doc("a", "alpha beta gamma")}},
			{name: "bad", err: boom},
		}, store)

		err := r.Run(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "bad:")
		assert.Len(t, store.added, 1, "the healthy loader still lands")
		assert.Equal(t, 1.0, testutil.ToFloat64(r.metrics.LoaderFailures.WithLabelValues("bad")))
	})

	t.Run("reset failure aborts the refresh", func(t *testing.T) {
		store := &fakeStore{err: errors.New("qdrant down")}
		r := newTestRefresher(t, []fakeLoader{
			{name: "one", docs: []documents.Document{doc("a", "alpha beta gamma")}},
		}, store)

		err := r.Run(context.Background())

		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "reset collection"))
		assert.NotContains(t, store.calls, "add")
	})

	t.Run("long documents are split into several excerpts", func(t *testing.T) {
		long := strings.Repeat("token ", 100)
		store := &fakeStore{}
		r := newTestRefresher(t, []fakeLoader{
			{name: "one", docs: []documents.Document{doc("a", long)}},
		}, store)

		err := r.Run(context.Background())

		require.NoError(t, err)
		assert.Greater(t, len(store.added), 1)
		assert.Equal(t, 1.0, testutil.ToFloat64(r.metrics.DocumentsLoaded.WithLabelValues("one")))
	})
}
