package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// untracked reports paths that are not counted in the request metrics.
func untracked(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/metrics"
}

// requestLogger logs every request with a request id, taken from the
// incoming header when present.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		if status >= http.StatusInternalServerError || len(c.Errors) > 0 {
			ev = log.Error()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("error", c.Errors.ByType(gin.ErrorTypeAny).String())
		}
		ev.Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recovery turns a panic into a 500 and logs the stack. It runs inside
// requestLogger so the failed request is still logged.
func recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Error().
					Interface("panic", rvr).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("stack_trace", string(debug.Stack())).
					Msg("recovered from panic")
				_ = c.Error(fmt.Errorf("panic: %v", rvr))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// instrument records request count and latency per matched route.
func instrument(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if untracked(c.Request.URL.Path) {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
