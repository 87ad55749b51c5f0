package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	initOnce sync.Once

	httpRequestsCounter    *prometheus.CounterVec
	httpDurationMetric     *prometheus.HistogramVec
	providerCallsCounter   *prometheus.CounterVec
	providerDurationMetric prometheus.Histogram
	workflowStepsCounter   *prometheus.CounterVec
)

// Init registers metrics on the default Prometheus registry exactly once.
func Init() {
	initOnce.Do(func() {
		httpRequestsCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests by route and status code.",
			},
			[]string{"route", "status"},
		)

		httpDurationMetric = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		)

		providerCallsCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_calls_total",
				Help: "Total generation provider calls by outcome.",
			},
			[]string{"outcome"},
		)

		providerDurationMetric = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "provider_call_duration_seconds",
				Help:    "Duration of generation provider calls in seconds.",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
			},
		)

		workflowStepsCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workflow_steps_total",
				Help: "Total orchestrator step executions by status.",
			},
			[]string{"status"},
		)

		prometheus.MustRegister(
			httpRequestsCounter,
			httpDurationMetric,
			providerCallsCounter,
			providerDurationMetric,
			workflowStepsCounter,
		)

		// Ensure label combinations are visible at /metrics before first use.
		for _, outcome := range []string{"success", "error", "timeout"} {
			providerCallsCounter.WithLabelValues(outcome)
		}
		for _, status := range []string{"success", "error", "skipped", "unregistered"} {
			workflowStepsCounter.WithLabelValues(status)
		}
	})
}

func IncHTTPRequest(route, status string) {
	Init()
	httpRequestsCounter.WithLabelValues(route, status).Inc()
}

func ObserveHTTPDuration(route string, d time.Duration) {
	Init()
	httpDurationMetric.WithLabelValues(route).Observe(d.Seconds())
}

func IncProviderCall(outcome string) {
	Init()
	providerCallsCounter.WithLabelValues(outcome).Inc()
}

func ObserveProviderDuration(d time.Duration) {
	Init()
	providerDurationMetric.Observe(d.Seconds())
}

func IncWorkflowStep(status string) {
	Init()
	workflowStepsCounter.WithLabelValues(status).Inc()
}
