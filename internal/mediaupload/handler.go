package mediaupload

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal_go/internal/httputil"
)

// Загрузка медиафайлов. Сейчас файл никуда не сохраняется: обработчик
// выдаёт идентификатор и ссылку-заглушку. Подключение объектного хранилища
// отложено, см. DESIGN.md.

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Upload(c *gin.Context) {
	var input struct {
		File string `json:"file"`
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if input.File == "" {
		httputil.RespondError(c, http.StatusBadRequest, "No file data provided")
		return
	}

	fileType := input.Type
	if fileType == "" {
		fileType = "image"
	}

	fileID := uuid.NewString()
	log.Printf("[HANDLER] Принят файл типа %q, выдан ID=%s", fileType, fileID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     "https://via.placeholder.com/800x600.png?text=Uploaded+" + fileType,
		"fileId":  fileID,
		"type":    fileType,
	})
}
