// Package metrics provides Prometheus metrics for the gstindex service
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the gstindex service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// gRPC request metrics
	GrpcRequestsTotal    *prometheus.CounterVec
	GrpcRequestDuration  *prometheus.HistogramVec
	GrpcRequestsInFlight prometheus.Gauge

	// Index operation metrics
	InsertsTotal           prometheus.Counter
	InsertedBytesTotal     prometheus.Counter
	SearchQueriesTotal     prometheus.Counter
	SearchResultsTotal     prometheus.Counter
	SimilarityQueriesTotal prometheus.Counter
	SimilarityResultsTotal prometheus.Counter
	AggregationsTotal      prometheus.Counter
	AggregationDuration    prometheus.Histogram

	// Index size metrics
	IndexNodesTotal     prometheus.Gauge
	IndexDocumentsTotal prometheus.Gauge

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	// gRPC request metrics
	m.GrpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gstindex_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "status"},
	)

	m.GrpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gstindex_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.GrpcRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gstindex_grpc_requests_in_flight",
			Help: "Number of gRPC requests currently being processed",
		},
	)

	// Index operation metrics
	m.InsertsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstindex_inserts_total",
			Help: "Total number of documents inserted into the index",
		},
	)

	m.InsertedBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstindex_inserted_bytes_total",
			Help: "Total number of document bytes inserted into the index",
		},
	)

	m.SearchQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstindex_search_queries_total",
			Help: "Total number of exact substring queries",
		},
	)

	m.SearchResultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstindex_search_results_total",
			Help: "Total number of exact substring results returned",
		},
	)

	m.SimilarityQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstindex_similarity_queries_total",
			Help: "Total number of similarity queries",
		},
	)

	m.SimilarityResultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstindex_similarity_results_total",
			Help: "Total number of similarity results returned",
		},
	)

	m.AggregationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstindex_aggregations_total",
			Help: "Total number of aggregation passes",
		},
	)

	m.AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gstindex_aggregation_duration_seconds",
			Help:    "Duration of aggregation passes in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// Index size metrics
	m.IndexNodesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gstindex_nodes_total",
			Help: "Total number of nodes in the suffix tree",
		},
	)

	m.IndexDocumentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gstindex_documents_total",
			Help: "Total number of documents in the index",
		},
	)

	// Server metrics
	m.ServerUptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gstindex_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime periodically updates the server uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// TrackInFlight increments the in-flight request gauge and returns the
// function that decrements it again.
func (m *Metrics) TrackInFlight() func() {
	if m == nil {
		return func() {}
	}
	m.GrpcRequestsInFlight.Inc()
	return m.GrpcRequestsInFlight.Dec
}

// RecordGrpcRequest records a gRPC request with its status
func (m *Metrics) RecordGrpcRequest(method string, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.GrpcRequestsTotal.WithLabelValues(method, status).Inc()
	m.GrpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordInsert records a document insertion
func (m *Metrics) RecordInsert(bytes int) {
	if m == nil {
		return
	}
	m.InsertsTotal.Inc()
	m.InsertedBytesTotal.Add(float64(bytes))
}

// RecordSearch records an exact substring query and its result count
func (m *Metrics) RecordSearch(results int) {
	if m == nil {
		return
	}
	m.SearchQueriesTotal.Inc()
	m.SearchResultsTotal.Add(float64(results))
}

// RecordSimilarity records a similarity query and its result count
func (m *Metrics) RecordSimilarity(results int) {
	if m == nil {
		return
	}
	m.SimilarityQueriesTotal.Inc()
	m.SimilarityResultsTotal.Add(float64(results))
}

// RecordAggregation records an aggregation pass
func (m *Metrics) RecordAggregation(duration time.Duration) {
	if m == nil {
		return
	}
	m.AggregationsTotal.Inc()
	m.AggregationDuration.Observe(duration.Seconds())
}

// UpdateIndexStats updates the index size gauges
func (m *Metrics) UpdateIndexStats(nodeCount, docCount int) {
	if m == nil {
		return
	}
	m.IndexNodesTotal.Set(float64(nodeCount))
	m.IndexDocumentsTotal.Set(float64(docCount))
}
