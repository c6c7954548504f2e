package weather

import (
	"log"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, apiKey string) {
	handler := NewHandler(NewClient(apiKey))
	r.GET("/weather", handler.Get)

	log.Printf("[ROUTER] Weather routes registered")
}
