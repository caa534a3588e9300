package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ingestion Prometheus metrics.
var (
	IngestedDocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corpusd",
			Name:      "ingested_documents_total",
			Help:      "Total number of successfully ingested documents",
		},
		[]string{"doc_type", "status"},
	)

	IngestFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corpusd",
			Name:      "ingest_failures_total",
			Help:      "Total number of failed ingestions",
		},
		[]string{"reason"}, // "invalid_payload" / "storage"
	)

	ClassificationFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corpusd",
			Name:      "classification_fallback_total",
			Help:      "Classifications that degraded to a default category",
		},
		[]string{"stage"}, // "language" / "doc_type" / "status"
	)
)

var ingestMetricsRegistered bool

// RegisterIngestMetrics registers Prometheus ingestion metrics. Must be called once from main.
func RegisterIngestMetrics() {
	if ingestMetricsRegistered {
		return
	}
	prometheus.MustRegister(IngestedDocumentsTotal)
	prometheus.MustRegister(IngestFailuresTotal)
	prometheus.MustRegister(ClassificationFallbackTotal)
	ingestMetricsRegistered = true
}
