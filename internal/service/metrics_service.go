package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	mutationTotal   *prometheus.CounterVec
	conflictGauge   *prometheus.GaugeVec
	undoDepthGauge  prometheus.Gauge
}

// NewMetricsService registers the core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	mutationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workspace_mutations_total",
		Help: "Total workspace mutations by operation",
	}, []string{"operation"})

	conflictGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "workspace_conflicts",
		Help: "Conflicts currently present in a workspace",
	}, []string{"workspace_id"})

	undoDepthGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "workspace_undo_depth",
		Help: "Undo stack depth of the most recently mutated workspace",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, mutationTotal, conflictGauge, undoDepthGauge, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		mutationTotal:   mutationTotal,
		conflictGauge:   conflictGauge,
		undoDepthGauge:  undoDepthGauge,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records per-request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordMutation counts a committed workspace mutation.
func (m *MetricsService) RecordMutation(operation string) {
	if m == nil {
		return
	}
	m.mutationTotal.WithLabelValues(operation).Inc()
}

// SetConflicts updates the conflict gauge for a workspace.
func (m *MetricsService) SetConflicts(workspaceID string, count int) {
	if m == nil {
		return
	}
	m.conflictGauge.WithLabelValues(workspaceID).Set(float64(count))
}

// SetUndoDepth updates the undo depth gauge.
func (m *MetricsService) SetUndoDepth(depth int) {
	if m == nil {
		return
	}
	m.undoDepthGauge.Set(float64(depth))
}
