package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LocalOnly 中间件：运维接口只允许本地访问（127.0.0.1 或 ::1）
func LocalOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		ip := net.ParseIP(clientIP)
		if ip == nil || !ip.IsLoopback() {
			c.JSON(http.StatusForbidden, gin.H{"error": "禁止访问：仅允许本地访问"})
			c.Abort()
			return
		}

		c.Next()
	}
}
