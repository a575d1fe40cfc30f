package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	scores          *prometheus.HistogramVec
	generatedTokens *prometheus.HistogramVec
	circuitState    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "promptcraft",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "promptcraft",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 3, 5},
		}, []string{"method", "route"}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "promptcraft",
			Name:      "evaluation_score",
			Help:      "Scores produced by the evaluators.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}, []string{"variant"}),
		generatedTokens: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "promptcraft",
			Name:      "generation_tokens",
			Help:      "Token counts produced by the generators.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 8),
		}, []string{"variant"}),
		circuitState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "promptcraft",
			Name:      "model_circuit_state",
			Help:      "State of the model circuit breaker (0 closed, 1 open, 2 half-open).",
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.scores, m.generatedTokens, m.circuitState)
	return m
}

// Middleware records request count and latency per route template
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveScore records an evaluation score for variant ("real" or "mock")
func (m *Metrics) ObserveScore(variant string, score float64) {
	m.scores.WithLabelValues(variant).Observe(score)
}

// ObserveTokens records a generation token count for variant
func (m *Metrics) ObserveTokens(variant string, tokens int) {
	m.generatedTokens.WithLabelValues(variant).Observe(float64(tokens))
}

// SetCircuitState publishes the circuit breaker state
func (m *Metrics) SetCircuitState(state CircuitState) {
	m.circuitState.Set(float64(state))
}
