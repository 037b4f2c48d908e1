package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// getClientIP returns the rate limiting key for a request. gin resolves
// X-Forwarded-For and X-Real-IP against the engine's trusted proxies.
func getClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
