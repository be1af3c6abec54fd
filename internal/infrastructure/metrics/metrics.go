package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "refrigeracao"

var (
	QuotationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotations_submitted_total",
		Help:      "Quotations persisted as orders.",
	})

	PriceTableWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_table_writes_total",
		Help:      "Price table writes by result (ok, error).",
	}, []string{"result"})

	DocumentsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_rendered_total",
		Help:      "Rendered documents by kind (pdf, xlsx).",
	}, []string{"kind"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Result labels for PriceTableWrites.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Kind labels for DocumentsRendered.
const (
	KindPDF  = "pdf"
	KindXLSX = "xlsx"
)

// RecordPriceTableWrite counts a write attempt by its outcome.
func RecordPriceTableWrite(err error) {
	if err != nil {
		PriceTableWrites.WithLabelValues(ResultError).Inc()
		return
	}
	PriceTableWrites.WithLabelValues(ResultOK).Inc()
}

// Middleware observes request latency labelled with the matched route template,
// so /v1/orders/:id stays a single series.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
