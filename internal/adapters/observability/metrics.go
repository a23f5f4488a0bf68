package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"staymerge/internal/domain"
)

var (
	Records = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staymerge", Name: "records_total", Help: "Input records by outcome."},
		[]string{"outcome", "reference"}, // outcome: resolved|failed; reference: hotel|room, empty when resolved
	)
	CatalogEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "staymerge", Name: "catalog_entries", Help: "Entries per loaded catalog."},
		[]string{"catalog"},
	)
	CatalogLoadSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "staymerge", Name: "catalog_load_duration_seconds",
			Help:    "Catalog load duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"catalog"},
	)
)

// Serve exposes /metrics on addr for the lifetime of the run. Empty addr
// disables the endpoint, which is the default for a one-shot pass.
func Serve(addr string) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(InitRegistry()))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(Records, CatalogEntries, CatalogLoadSeconds)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveRecord(outcome, reference string) {
	Records.WithLabelValues(outcome, reference).Inc()
}

func ObserveCatalogLoad(catalog string, entries int, dur time.Duration) {
	CatalogEntries.WithLabelValues(catalog).Set(float64(entries))
	CatalogLoadSeconds.WithLabelValues(catalog).Observe(dur.Seconds())
}

// Recorder bridges the pipeline's metrics port onto the prometheus counters.
type Recorder struct{}

func (Recorder) CatalogLoaded(catalog string, entries int, dur time.Duration) {
	ObserveCatalogLoad(catalog, entries, dur)
}

func (Recorder) RecordOutcome(outcome string, reference domain.Reference) {
	ObserveRecord(outcome, string(reference))
}
