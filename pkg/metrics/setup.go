package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the registry, the HTTP server exposing it and the
// counters tracked by the knowledge-refresh pipeline.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	// DocumentsLoaded counts documents produced per loader.
	DocumentsLoaded *prometheus.CounterVec

	// LoaderFailures counts failed loader runs per loader.
	LoaderFailures *prometheus.CounterVec

	// ExcerptsIndexed counts excerpts written to the vector store.
	ExcerptsIndexed prometheus.Counter

	// RefreshDuration tracks wall-clock seconds per full refresh.
	RefreshDuration prometheus.Histogram

	serviceName string
}

func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	documentsLoaded := createCounterVec(
		"marvin_documents_loaded_total",
		"Number of documents produced by each loader.",
		[]string{"loader"},
	)
	loaderFailures := createCounterVec(
		"marvin_loader_failures_total",
		"Number of failed loader runs.",
		[]string{"loader"},
	)
	excerptsIndexed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marvin_excerpts_indexed_total",
		Help: "Number of excerpts written to the vector store.",
	})
	refreshDuration := createHistogram(
		"marvin_refresh_duration_seconds",
		"Wall-clock duration of a full knowledge refresh.",
		prometheus.ExponentialBuckets(1, 2, 12),
	)

	wrappedRegistry.MustRegister(documentsLoaded, loaderFailures, excerptsIndexed, refreshDuration)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return &Metrics{
		Server:          server,
		Registry:        registry,
		DocumentsLoaded: documentsLoaded,
		LoaderFailures:  loaderFailures,
		ExcerptsIndexed: excerptsIndexed,
		RefreshDuration: refreshDuration,
		serviceName:     cfg.ServiceName,
	}
}
