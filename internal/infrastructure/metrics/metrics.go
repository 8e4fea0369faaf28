package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

// Metrics exposes the Prometheus counters for the HTTP surface and the
// data-access layer.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	queries      *prometheus.CounterVec
	rpcs         *prometheus.CounterVec
}

var _ dataclient.Metrics = (*Metrics)(nil)

// New registers the collectors on the default registerer.
func New() *Metrics {
	return &Metrics{
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hireflow_http_requests_total",
			Help: "HTTP requests by path, method and status.",
		}, []string{"path", "method", "status"}),
		httpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hireflow_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		queries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hireflow_dataclient_queries_total",
			Help: "Data-access queries by table, operation and outcome.",
		}, []string{"table", "op", "outcome"}),
		rpcs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hireflow_dataclient_rpc_total",
			Help: "RPC dispatches by procedure and outcome.",
		}, []string{"procedure", "outcome"}),
	}
}

func outcome(failed bool) string {
	if failed {
		return "error"
	}
	return "ok"
}

// ObserveQuery counts one executed query.
func (m *Metrics) ObserveQuery(table, op string, failed bool) {
	m.queries.WithLabelValues(table, op, outcome(failed)).Inc()
}

// ObserveRPC counts one dispatched procedure.
func (m *Metrics) ObserveRPC(name string, failed bool) {
	m.rpcs.WithLabelValues(name, outcome(failed)).Inc()
}

// GinMiddleware records request counts and latency per route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.httpRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
