package httputil

import "github.com/gin-gonic/gin"

// RespondError отправляет ошибку с настоящим HTTP-статусом и прекращает обработку.
// Используется публичным API и вспомогательными прокси.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// RespondAdminError отдаёт ошибку внутри тела с кодом 200 — контракт админки.
// Фронтенд панели различает успех и ошибку по ключу error, а не по статусу,
// поэтому унифицировать эти два формата нельзя.
func RespondAdminError(c *gin.Context, msg string) {
	c.JSON(200, gin.H{"error": msg})
}
