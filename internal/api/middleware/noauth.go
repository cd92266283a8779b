package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoAuth is used when AUTH_MODE=none. Every request runs as the anonymous user.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uint(0))
		c.Set("user_id_str", "anonymous")
		c.Next()
	}
}

// Auth picks the middleware for an auth mode
func Auth(gateway bool) gin.HandlerFunc {
	if gateway {
		return GatewayAuth()
	}
	return NoAuth()
}
