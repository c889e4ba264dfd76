// Package metrics exposes store occupancy and eviction counters as
// prometheus collectors, with an optional HTTP listener.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 5 * time.Second

// Exporter registers store metrics on its own prometheus registry.
type Exporter struct {
	registry *prometheus.Registry
	server   *http.Server
}

// NewExporter creates an exporter reading live values from the store.
func NewExporter(store ports.BlobStore) *Exporter {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "nativelink",
				Subsystem: "store",
				Name:      "items",
				Help:      "Number of live blobs in the store.",
			},
			func() float64 { return float64(store.Stats().Items) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "nativelink",
				Subsystem: "store",
				Name:      "bytes",
				Help:      "Byte sum over live blobs in the store.",
			},
			func() float64 { return float64(store.Stats().TotalBytes) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: "nativelink",
				Subsystem: "store",
				Name:      "evicted_items_total",
				Help:      "Blobs removed by eviction policy since startup.",
			},
			func() float64 { return float64(store.Stats().EvictedItems) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: "nativelink",
				Subsystem: "store",
				Name:      "evicted_bytes_total",
				Help:      "Bytes removed by eviction policy since startup.",
			},
			func() float64 { return float64(store.Stats().EvictedBytes) },
		),
	)

	return &Exporter{registry: registry}
}

// Registry returns the exporter's prometheus registry.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Handler returns an HTTP handler serving the metrics in text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled. An empty addr
// disables the listener.
func (e *Exporter) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())

	e.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = e.server.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "metrics listener failed")
		}
		return nil
	}
}
