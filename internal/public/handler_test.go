package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newPublicRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r.Group("/api"), nil)
	return r
}

// Публичный API отвечает настоящими статусами: валидация отрабатывает
// до обращения к БД, поэтому хранилище в этих тестах не нужно
func TestCreateNewsRejectsIncompleteBody(t *testing.T) {
	r := newPublicRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/news", strings.NewReader(`{"title":"Только заголовок"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался статус 400, получен %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if body["error"] != "Invalid request" {
		t.Errorf("неверное сообщение: %q", body["error"])
	}
}

func TestUpdateNewsRequiresID(t *testing.T) {
	r := newPublicRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/news", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался статус 400, получен %d", w.Code)
	}
}

func TestDeleteNewsRejectsBadID(t *testing.T) {
	r := newPublicRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/news?id=abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался статус 400, получен %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if body["error"] != "Invalid id" {
		t.Errorf("неверное сообщение: %q", body["error"])
	}
}

func TestCreateCategoryRequiresCodeAndLabel(t *testing.T) {
	r := newPublicRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"icon":"star"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался статус 400, получен %d", w.Code)
	}
}
