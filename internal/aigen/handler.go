package aigen

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsportal_go/internal/httputil"
)

// generateTimeout — потолок ожидания текстовой модели
const generateTimeout = 30 * time.Second

type Handler struct {
	Generator *Generator
}

func NewHandler(gen *Generator) *Handler {
	return &Handler{Generator: gen}
}

func (h *Handler) Generate(c *gin.Context) {
	var input struct {
		Prompt            string `json:"prompt"`
		ContentType       string `json:"contentType"`
		GenerateImageOnly bool   `json:"generateImageOnly"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if input.Prompt == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	// Режим «только картинка» не обращается к текстовой модели вовсе
	if input.GenerateImageOnly {
		c.JSON(http.StatusOK, gin.H{"image_url": ImageURL(input.Prompt)})
		return
	}

	if h.Generator.APIKey == "" {
		httputil.RespondError(c, http.StatusInternalServerError, "API key not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	raw, err := h.Generator.Generate(ctx, BuildPrompt(input.Prompt, input.ContentType))
	if err != nil {
		log.Printf("[HANDLER ERROR] Генерация контента не удалась: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to generate content")
		return
	}

	c.JSON(http.StatusOK, ParseGenerated(raw, input.Prompt))
}
