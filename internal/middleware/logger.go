package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the context key the logger and error responses share.
const requestIDKey = "request_id"

// RequestID tags every request with an X-Request-ID, reusing the caller's
// header when present so one client flow can be traced across calls.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger writes one line per request: id, status, method, path with query,
// latency, and response size. Health probes are skipped so liveness polling
// does not drown the log.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/healthz" || path == "/readyz" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}
		log.Printf("%s %d %s %s %s %dB",
			c.GetString(requestIDKey),
			c.Writer.Status(),
			c.Request.Method,
			path,
			time.Since(start).Round(time.Microsecond),
			c.Writer.Size(),
		)
	}
}

// Recovery turns a handler panic into a JSON 500 carrying the request id,
// keeping the error envelope consistent with mapped domain errors.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("%s panic recovered: %v", c.GetString(requestIDKey), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "an internal error occurred",
			},
		})
	})
}
