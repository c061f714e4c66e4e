package middleware

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type requestIDKey struct{}

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags every API request with a stable id so a
// sign-in, project write and its view refresh can be correlated in the
// logs. A caller-supplied X-Request-Id is honored, otherwise a fresh
// uuid is issued. The id is echoed in the response header and attached
// to the request context for downstream code.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), requestIDKey{}, rid),
		)
		c.Writer.Header().Set(requestIDHeader, rid)

		start := time.Now()
		c.Next()

		log.Printf("[req] id=%s %s %s -> %d in %s (client=%s)",
			rid, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start), c.ClientIP(),
		)
	}
}

// GetRequestID returns the request id stored by RequestIDMiddleware,
// or "" when the context did not pass through it.
func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}
