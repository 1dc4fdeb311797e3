package monitoring

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Authentication metrics
	authAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hms_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"},
	)

	// Authorization metrics
	accessDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hms_access_decisions_total",
			Help: "Total number of access control decisions",
		},
		[]string{"role", "action", "decision"},
	)

	// Domain mutation metrics
	mutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hms_mutations_total",
			Help: "Total number of domain mutations",
		},
		[]string{"entity", "operation"},
	)

	registerOnce sync.Once
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct{}

// NewMetricsCollector creates a new metrics collector. Metric
// registration happens once per process regardless of how many
// collectors are created.
func NewMetricsCollector() *MetricsCollector {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			authAttemptsTotal,
			accessDecisionsTotal,
			mutationsTotal,
		)
	})

	return &MetricsCollector{}
}

// RecordAuthAttempt records an authentication attempt
func (m *MetricsCollector) RecordAuthAttempt(success bool) {
	authAttemptsTotal.WithLabelValues(authStatus(success)).Inc()
}

// RecordAccessDecision records a permit/deny decision for a requested action
func (m *MetricsCollector) RecordAccessDecision(role, action string, permitted bool) {
	decision := "deny"
	if permitted {
		decision = "permit"
	}
	accessDecisionsTotal.WithLabelValues(role, action, decision).Inc()
}

// RecordMutation records a successful domain mutation
func (m *MetricsCollector) RecordMutation(entity, operation string) {
	mutationsTotal.WithLabelValues(entity, operation).Inc()
}

func authStatus(success bool) string {
	return strconv.FormatBool(success)
}

// StartMetricsServer starts the Prometheus metrics endpoint on the
// given port. It only serves operational metrics; no domain data is
// exposed.
func StartMetricsServer(port int, path string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		_ = server.ListenAndServe()
	}()

	return server
}
