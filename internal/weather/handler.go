package weather

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsportal_go/internal/httputil"
)

// defaultCity подставляется, когда виджет не передал город
const defaultCity = "Moscow"

type Handler struct {
	Client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

func (h *Handler) Get(c *gin.Context) {
	if h.Client.APIKey == "" {
		httputil.RespondError(c, http.StatusInternalServerError, "API key not configured")
		return
	}

	city := c.DefaultQuery("city", defaultCity)

	report, err := h.Client.Current(city)
	if err != nil {
		// Ошибку погодного сервиса отдаём с его же статусом
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			c.AbortWithStatusJSON(upstream.StatusCode, gin.H{"error": "Weather API error: " + upstream.Status})
			return
		}
		log.Printf("[HANDLER ERROR] Запрос погоды для %q не удался: %v", city, err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to get weather")
		return
	}

	c.JSON(http.StatusOK, report)
}
