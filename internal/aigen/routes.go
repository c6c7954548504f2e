package aigen

import (
	"log"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, apiKey string) {
	handler := NewHandler(NewGenerator(apiKey))
	r.POST("/generate", handler.Generate)

	log.Printf("[ROUTER] AI generation routes registered")
}
