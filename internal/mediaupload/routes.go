package mediaupload

import (
	"log"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup) {
	handler := NewHandler()
	r.POST("/upload", handler.Upload)

	log.Printf("[ROUTER] Media upload routes registered")
}
