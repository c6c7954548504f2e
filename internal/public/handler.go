package public

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsportal_go/internal/httputil"
	"newsportal_go/models"
	"newsportal_go/pkg/storage"
)

// Публичный API портала. В отличие от админки ошибки здесь отдаются
// настоящими HTTP-статусами: на это завязан публичный фронтенд.

type Handler struct {
	DB *storage.DB
}

func NewHandler(db *storage.DB) *Handler {
	return &Handler{DB: db}
}

// newsInput — тело создания/обновления новости публичным API.
// Обновление перезаписывает все поля целиком, частичных PUT здесь нет.
type newsInput struct {
	Title        string `json:"title" binding:"required"`
	CategoryCode string `json:"category_code" binding:"required"`
	TimeLabel    string `json:"time_label" binding:"required"`
	ImageURL     string `json:"image_url" binding:"required"`
	Description  string `json:"description"`
}

func (h *Handler) ListNews(c *gin.Context) {
	list, err := h.DB.GetPublicNewsList()
	if err != nil {
		log.Printf("[HANDLER ERROR] Не удалось получить ленту новостей: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to get news")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateNews(c *gin.Context) {
	var input newsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	created, err := h.DB.CreatePublicNews(input.Title, input.CategoryCode,
		input.TimeLabel, input.ImageURL, input.Description)
	if err != nil {
		log.Printf("[HANDLER ERROR] Не удалось создать новость: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to create news")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateNews(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	var input newsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	updated, err := h.DB.UpdatePublicNews(id, input.Title, input.CategoryCode,
		input.TimeLabel, input.ImageURL, input.Description)
	if err != nil {
		if errors.Is(err, storage.ErrNewsNotFound) {
			httputil.RespondError(c, http.StatusNotFound, "News not found")
			return
		}
		log.Printf("[HANDLER ERROR] Не удалось обновить новость %d: %v", id, err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to update news")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteNews(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	if err := h.DB.DeletePublicNews(id); err != nil {
		log.Printf("[HANDLER ERROR] Не удалось удалить новость %d: %v", id, err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to delete news")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.DB.GetCategoriesByID()
	if err != nil {
		log.Printf("[HANDLER ERROR] Не удалось получить рубрики: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to get categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var input struct {
		Code  string `json:"code" binding:"required"`
		Label string `json:"label" binding:"required"`
		Icon  string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	created, err := h.DB.CreateCategory(models.Category{
		Code:  input.Code,
		Label: input.Label,
		Color: "#000000",
		Icon:  input.Icon,
	})
	if err != nil {
		log.Printf("[HANDLER ERROR] Не удалось создать рубрику: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	var input struct {
		Label string `json:"label" binding:"required"`
		Icon  string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	updated, err := h.DB.UpdateCategory(id, input.Label, input.Icon)
	if err != nil {
		if errors.Is(err, storage.ErrCategoryNotFound) {
			httputil.RespondError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("[HANDLER ERROR] Не удалось обновить рубрику %d: %v", id, err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	if err := h.DB.DeleteCategory(id); err != nil {
		log.Printf("[HANDLER ERROR] Не удалось удалить рубрику %d: %v", id, err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// requireID достаёт обязательный числовой id из query-строки.
// При отсутствии или мусоре отвечает 400 и возвращает ok=false.
func requireID(c *gin.Context) (int, bool) {
	idStr := c.Query("id")
	if idStr == "" {
		httputil.RespondError(c, http.StatusBadRequest, "ID is required")
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
