package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-admin/pkg/helpers"
)

// RequestLog injects a unique request_id and the resolved client IP into the
// Gin context, and stores a pre-fielded logrus entry in the request context
// so handlers and services log through helpers.LoggerFromContext.
func RequestLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		ip := clientIP(c)

		entry := logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         ip,
		})

		c.Set("request_id", id)
		c.Set("real_ip", ip)
		c.Request = c.Request.WithContext(helpers.WithLogger(c.Request.Context(), entry))
		c.Next()
	}
}

// clientIP resolves the caller address.
// Priority:
// 1) CF-Connecting-IP (Cloudflare)
// 2) X-Forwarded-For (left-most)
// 3) fallback to c.ClientIP()
func clientIP(c *gin.Context) string {
	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		if ip := net.ParseIP(cf); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			first := strings.TrimSpace(parts[0])
			if ip := net.ParseIP(first); ip != nil {
				return ip.String()
			}
		}
	}
	return c.ClientIP()
}
