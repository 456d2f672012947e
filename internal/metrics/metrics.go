package metrics

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Observer is the process wide metrics collector.
var Observer = NewMetrics()

// Metrics records the learning metrics on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// NewMetrics creates and registers a new set of collectors.
func NewMetrics() *Metrics {
	p := NewPrometheusMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(p.Accuracy, p.Precision, p.Recall, p.Standardized)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

// Accuracy records the accuracy of a fold for the given set e.g. train or test.
// Every run of the same model overwrites the values of the previous one.
func (m *Metrics) Accuracy(model, set string, fold int, accuracy float64) {
	m.prometheus.Accuracy.WithLabelValues(model, set, strconv.Itoa(fold)).Set(accuracy)
}

// Scores records the precision and recall of the model for the given set.
func (m *Metrics) Scores(model, set string, precision, recall float64) {
	m.prometheus.Precision.WithLabelValues(model, set).Set(precision)
	m.prometheus.Recall.WithLabelValues(model, set).Set(recall)
}

// Standardized counts the standardized rows for the operation e.g. fit or transform.
func (m *Metrics) Standardized(op string, rows int) {
	m.prometheus.Standardized.WithLabelValues(op).Add(float64(rows))
}

// Handler exposes the collected metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on the given port under /metrics.
func (m *Metrics) Serve(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Int("port", port).Msg("metrics server stopped")
		}
	}()
	log.Info().Int("port", port).Msg("serving metrics")
	return srv
}
