package ctxmanage

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const TraceIDKey = "trace_id"

// GetTraceIdOfRequest returns the trace id set by the logging middleware.
// Handlers reached outside the middleware chain (tests, health checks) still
// get a usable id.
func GetTraceIdOfRequest(c *gin.Context) string {
	traceId, ok := c.Get(TraceIDKey)
	if !ok {
		return uuid.NewString()
	}
	id, ok := traceId.(string)
	if !ok || id == "" {
		return uuid.NewString()
	}
	return id
}

// SetTraceId stores the trace id on the gin context for downstream handlers.
func SetTraceId(c *gin.Context, traceId string) {
	c.Set(TraceIDKey, traceId)
}
