package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS выставляет заголовки для работы фронтенда с другого origin.
// Preflight-запрос OPTIONS завершается сразу, до какой-либо другой логики,
// пустым телом — дальше по цепочке он не идёт.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Auth-Token, X-Admin-Token")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
