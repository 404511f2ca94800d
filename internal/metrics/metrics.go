package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gostore_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	// UploadsTotal counts successfully stored objects.
	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gostore_uploads_total",
		Help: "Successful object uploads.",
	})

	// WriteRetriesTotal counts failed object write attempts.
	WriteRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gostore_write_retries_total",
		Help: "Failed object write attempts.",
	})

	// PublicGrantFailuresTotal counts best-effort public-read grants that did not apply.
	PublicGrantFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gostore_public_grant_failures_total",
		Help: "Public-read grants that failed and were skipped.",
	})
)

// Middleware counts every handled request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	router.GET(path, gin.WrapH(promhttp.Handler()))
}
