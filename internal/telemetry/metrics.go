// Package telemetry exposes the counters, spans and per-run
// correlation IDs an indexing run emits, grounded on code-watch's
// internal/shared/observability metrics package.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FilesIndexedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phpindex_files_indexed_total",
		Help: "Total number of PHP files successfully indexed.",
	})

	FilesFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phpindex_files_failed_total",
		Help: "Total number of PHP files that failed to parse or transform.",
	})

	SymbolsEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phpindex_symbols_emitted_total",
		Help: "Total number of symbols emitted across all indexed files.",
	})

	ReferencesEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phpindex_references_emitted_total",
		Help: "Total number of references emitted across all indexed files.",
	})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phpindex_cache_hits_total",
		Help: "Total number of on-disk cache lookups that returned a record.",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phpindex_cache_misses_total",
		Help: "Total number of on-disk cache lookups that found nothing.",
	})

	PassDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "phpindex_pass_duration_seconds",
		Help:    "Time spent running the extraction pass on a single file.",
		Buckets: prometheus.DefBuckets,
	})
)

// CountFile records a completed indexing outcome for one file, and its
// symbol/reference counts when successful.
func CountFile(err error, symbols, refs int) {
	if err != nil {
		FilesFailedTotal.Inc()
		return
	}
	FilesIndexedTotal.Inc()
	SymbolsEmittedTotal.Add(float64(symbols))
	ReferencesEmittedTotal.Add(float64(refs))
}
