package newsadmin

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsportal_go/internal/config"
	"newsportal_go/internal/httputil"
	"newsportal_go/internal/importer"
	"newsportal_go/models"
	"newsportal_go/pkg/storage"
)

// routeKey — пара (HTTP-метод, ресурс из query-параметра resource).
// Диспетчеризация идёт по готовой таблице, собранной и проверенной на старте,
// а не по цепочке строковых сравнений в момент запроса.
type routeKey struct {
	method   string
	resource string
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

type Handler struct {
	DB          *storage.DB
	Importer    *importer.Importer
	DeleteMode  string
	ImportLimit int

	table map[routeKey]gin.HandlerFunc
}

func NewHandler(db *storage.DB, imp *importer.Importer, deleteMode string, importLimit int) *Handler {
	h := &Handler{DB: db, Importer: imp, DeleteMode: deleteMode, ImportLimit: importLimit}

	// Ресурсы создания исторически в единственном числе (category, banner),
	// выборки — во множественном. Фронтенд панели завязан на оба варианта.
	h.table = map[routeKey]gin.HandlerFunc{
		{http.MethodGet, "news"}:        h.getNews,
		{http.MethodGet, "categories"}:  h.listCategories,
		{http.MethodGet, "banners"}:     h.getBanners,
		{http.MethodGet, "stats"}:       h.getStats,
		{http.MethodGet, "import-news"}: h.importNews,
		{http.MethodGet, "import-rss"}:  h.importRSS,
		{http.MethodPost, "news"}:       h.createNews,
		{http.MethodPost, "category"}:   h.createCategory,
		{http.MethodPost, "banner"}:     h.createBanner,
		{http.MethodPut, "news"}:        h.updateNews,
		{http.MethodPut, "banner"}:      h.updateBanner,
		{http.MethodDelete, "news"}:     h.deleteNews,
		{http.MethodDelete, "banner"}:   h.deleteBanner,
	}

	if err := validateTable(h.table); err != nil {
		log.Fatalf("[ROUTER] Некорректная таблица маршрутов админки: %v", err)
	}
	return h
}

// validateTable проверяет таблицу диспетчеризации при сборке обработчика
func validateTable(table map[routeKey]gin.HandlerFunc) error {
	for key, fn := range table {
		if !allowedMethods[key.method] {
			return fmt.Errorf("unsupported method %q for resource %q", key.method, key.resource)
		}
		if key.resource == "" {
			return fmt.Errorf("empty resource for method %q", key.method)
		}
		if fn == nil {
			return fmt.Errorf("nil handler for %s %s", key.method, key.resource)
		}
	}
	return nil
}

// Dispatch выбирает обработчик по методу и ресурсу.
// Ошибки маршрутизации отдаются в теле с кодом 200 — контракт админки.
func (h *Handler) Dispatch(c *gin.Context) {
	if !allowedMethods[c.Request.Method] {
		httputil.RespondAdminError(c, "Method not allowed")
		return
	}
	resource := c.DefaultQuery("resource", "news")
	fn, ok := h.table[routeKey{c.Request.Method, resource}]
	if !ok {
		httputil.RespondAdminError(c, "Unknown resource")
		return
	}
	fn(c)
}

// fail логирует причину и отдаёт 500 с коротким сообщением без деталей БД
func (h *Handler) fail(c *gin.Context, msg string, err error) {
	log.Printf("[HANDLER ERROR] %s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// --- Новости ---

func (h *Handler) getNews(c *gin.Context) {
	if c.Query("id") != "" {
		h.getNewsDetail(c)
		return
	}

	filter := models.NewsFilter{
		Category: c.Query("category"),
		Status:   c.DefaultQuery("status", models.StatusPublished),
		Limit:    intQuery(c, "limit", 50),
		Offset:   intQuery(c, "offset", 0),
	}

	list, err := h.DB.GetNewsList(filter)
	if err != nil {
		h.fail(c, "Failed to get news list", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getNewsDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		httputil.RespondAdminError(c, "Invalid id")
		return
	}

	news, err := h.DB.GetNewsDetail(id)
	if err != nil {
		if errors.Is(err, storage.ErrNewsNotFound) {
			httputil.RespondAdminError(c, "News not found")
			return
		}
		h.fail(c, "Failed to get news detail", err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *Handler) createNews(c *gin.Context) {
	var input models.NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondAdminError(c, "Invalid request body")
		return
	}

	id, err := h.DB.CreateNews(input)
	if err != nil {
		h.fail(c, "Failed to create news", err)
		return
	}
	log.Printf("[HANDLER] Создана новость ID=%d", id)
	c.JSON(http.StatusOK, gin.H{"id": id, "success": true})
}

func (h *Handler) updateNews(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		httputil.RespondAdminError(c, "ID required for update")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		httputil.RespondAdminError(c, "Invalid id")
		return
	}

	// Частичное обновление: меняются только присланные ключи
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httputil.RespondAdminError(c, "Invalid request body")
		return
	}

	if err := h.DB.UpdateNews(id, fields); err != nil {
		switch {
		case errors.Is(err, storage.ErrNoUpdateFields):
			httputil.RespondAdminError(c, "No fields to update")
		case errors.Is(err, storage.ErrNewsNotFound):
			httputil.RespondAdminError(c, "News not found")
		default:
			h.fail(c, "Failed to update news", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) deleteNews(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		httputil.RespondAdminError(c, "ID required for delete")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		httputil.RespondAdminError(c, "Invalid id")
		return
	}

	// Режим задаётся конфигурацией и един для всего приложения
	if h.DeleteMode == config.DeleteModeHard {
		err = h.DB.DeleteNewsHard(id)
	} else {
		err = h.DB.DeleteNewsSoft(id)
	}
	if err != nil {
		h.fail(c, "Failed to delete news", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Рубрики ---

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.DB.GetCategories()
	if err != nil {
		h.fail(c, "Failed to get categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) createCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		httputil.RespondAdminError(c, "Invalid request body")
		return
	}
	if cat.Color == "" {
		cat.Color = "#000000"
	}

	created, err := h.DB.CreateCategory(cat)
	if err != nil {
		h.fail(c, "Failed to create category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": created.Code, "success": true})
}

// --- Баннеры ---

func (h *Handler) getBanners(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			httputil.RespondAdminError(c, "Invalid id")
			return
		}
		banner, err := h.DB.GetBannerByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrBannerNotFound) {
				httputil.RespondAdminError(c, "Banner not found")
				return
			}
			h.fail(c, "Failed to get banner", err)
			return
		}
		c.JSON(http.StatusOK, banner)
		return
	}

	banners, err := h.DB.GetBanners(c.Query("placement"))
	if err != nil {
		h.fail(c, "Failed to get banners", err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *Handler) createBanner(c *gin.Context) {
	// is_active через указатель: отсутствие поля означает true, а не false
	var input struct {
		Placement string `json:"placement"`
		Title     string `json:"title"`
		MediaType string `json:"media_type"`
		MediaURL  string `json:"media_url"`
		LinkURL   string `json:"link_url"`
		RsyCode   string `json:"rsy_code"`
		IsActive  *bool  `json:"is_active"`
		Priority  int    `json:"priority"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondAdminError(c, "Invalid request body")
		return
	}

	banner := models.Banner{
		Placement: input.Placement,
		Title:     input.Title,
		MediaType: input.MediaType,
		MediaURL:  input.MediaURL,
		LinkURL:   input.LinkURL,
		RsyCode:   input.RsyCode,
		IsActive:  true,
		Priority:  input.Priority,
	}
	if banner.MediaType == "" {
		banner.MediaType = "image"
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	id, err := h.DB.CreateBanner(banner)
	if err != nil {
		h.fail(c, "Failed to create banner", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "success": true})
}

func (h *Handler) updateBanner(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		httputil.RespondAdminError(c, "ID required for update")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		httputil.RespondAdminError(c, "Invalid id")
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httputil.RespondAdminError(c, "Invalid request body")
		return
	}

	if err := h.DB.UpdateBanner(id, fields); err != nil {
		switch {
		case errors.Is(err, storage.ErrNoUpdateFields):
			httputil.RespondAdminError(c, "No fields to update")
		case errors.Is(err, storage.ErrBannerNotFound):
			httputil.RespondAdminError(c, "Banner not found")
		default:
			h.fail(c, "Failed to update banner", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) deleteBanner(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		httputil.RespondAdminError(c, "ID required for delete")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		httputil.RespondAdminError(c, "Invalid id")
		return
	}

	if err := h.DB.DeleteBanner(id); err != nil {
		h.fail(c, "Failed to delete banner", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Служебные ресурсы ---

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.DB.GetNewsStats()
	if err != nil {
		h.fail(c, "Failed to get stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) importNews(c *gin.Context) {
	imported, err := h.Importer.ImportHTML(intQuery(c, "limit", h.ImportLimit))
	if err != nil {
		h.fail(c, "Failed to import news", err)
		return
	}
	c.JSON(http.StatusOK, imported)
}

func (h *Handler) importRSS(c *gin.Context) {
	imported, err := h.Importer.ImportRSS(intQuery(c, "limit", h.ImportLimit))
	if err != nil {
		h.fail(c, "Failed to import RSS feed", err)
		return
	}
	c.JSON(http.StatusOK, imported)
}

// intQuery читает числовой query-параметр, возвращая значение по умолчанию
// при отсутствии или мусоре
func intQuery(c *gin.Context, name string, defaultValue int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return defaultValue
}
