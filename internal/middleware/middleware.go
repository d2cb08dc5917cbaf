package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "marketplace-bot/pkg/log"
	"marketplace-bot/pkg/response"
)

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderInternalKey = "X-Internal-Key"
)

// RequestID tags every request with an id, reusing the caller's when present,
// and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(pkgLog.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// InternalAuth guards operator endpoints with the shared internal key.
// An empty configured key rejects everything.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderInternalKey)
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.InternalAuth: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
