package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-audit-tool/backend/stats"
)

// Stats tracks visitors and per-module analysis request statistics.
func Stats(tracker *stats.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		tracker.TrackVisitor(c.ClientIP())

		c.Next()

		if module, ok := moduleForPath(c.Request.URL.Path); ok {
			latency := float64(time.Since(start).Milliseconds())
			tracker.TrackRequest(module, latency, c.Writer.Status() >= 400)
		}
	}
}

// moduleForPath maps analysis endpoints to a module tag. Health checks and
// static paths are not tracked.
func moduleForPath(path string) (string, bool) {
	for _, m := range []string{"seo", "search", "geo", "traffic", "report", "onpage"} {
		if strings.HasPrefix(path, "/api/"+m+"/") {
			return m, true
		}
	}
	return "", false
}
