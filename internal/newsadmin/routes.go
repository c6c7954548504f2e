package newsadmin

import (
	"log"

	"github.com/gin-gonic/gin"

	"newsportal_go/internal/importer"
	"newsportal_go/pkg/storage"
)

// SetupRoutes регистрирует единую точку входа админки.
// Всё управление идёт через /admin/api с выбором ресурса query-параметром.
func SetupRoutes(r *gin.RouterGroup, db *storage.DB, imp *importer.Importer, deleteMode string, importLimit int) {
	handler := NewHandler(db, imp, deleteMode, importLimit)
	r.Any("/api", handler.Dispatch)

	log.Printf("[ROUTER] Admin API routes registered")
}
