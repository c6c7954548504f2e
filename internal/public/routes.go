package public

import (
	"log"

	"github.com/gin-gonic/gin"

	"newsportal_go/pkg/storage"
)

func SetupRoutes(r *gin.RouterGroup, db *storage.DB) {
	handler := NewHandler(db)

	r.GET("/news", handler.ListNews)
	r.POST("/news", handler.CreateNews)
	r.PUT("/news", handler.UpdateNews)
	r.DELETE("/news", handler.DeleteNews)

	r.GET("/categories", handler.ListCategories)
	r.POST("/categories", handler.CreateCategory)
	r.PUT("/categories", handler.UpdateCategory)
	r.DELETE("/categories", handler.DeleteCategory)

	log.Printf("[ROUTER] Public API routes registered")
}
