package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "mri"

// Prometheus holds the collectors for the learning runs.
type Prometheus struct {
	Accuracy     *prometheus.GaugeVec
	Precision    *prometheus.GaugeVec
	Recall       *prometheus.GaugeVec
	Standardized *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "fold_accuracy",
				Help:      "mean accuracy of the classifier per cross validation fold",
			}, []string{"model", "set", "fold"}),
		Precision: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "precision",
				Help:      "precision of the positive class",
			}, []string{"model", "set"}),
		Recall: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "recall",
				Help:      "recall of the positive class",
			}, []string{"model", "set"}),
		Standardized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "standardized_rows",
				Help:      "number of rows standardized",
			}, []string{"op"}),
	}
}
