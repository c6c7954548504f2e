package newsadmin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"newsportal_go/internal/config"
	"newsportal_go/internal/middleware"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, nil, config.DeleteModeSoft, 20)
	r := gin.New()
	r.Use(middleware.CORS())
	r.Any("/admin/api", h.Dispatch)
	return r
}

func adminRequest(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	r.ServeHTTP(w, req)

	parsed := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("ответ не является JSON: %v (%s)", err, w.Body.String())
		}
	}
	return w, parsed
}

func TestValidateTable(t *testing.T) {
	noop := func(c *gin.Context) {}

	if err := validateTable(map[routeKey]gin.HandlerFunc{{http.MethodGet, "news"}: noop}); err != nil {
		t.Errorf("корректная таблица не должна отвергаться: %v", err)
	}
	if err := validateTable(map[routeKey]gin.HandlerFunc{{http.MethodPatch, "news"}: noop}); err == nil {
		t.Error("метод PATCH должен отвергаться")
	}
	if err := validateTable(map[routeKey]gin.HandlerFunc{{http.MethodGet, ""}: noop}); err == nil {
		t.Error("пустой ресурс должен отвергаться")
	}
	if err := validateTable(map[routeKey]gin.HandlerFunc{{http.MethodGet, "news"}: nil}); err == nil {
		t.Error("nil-обработчик должен отвергаться")
	}
}

// Ошибки маршрутизации админки отдаются с кодом 200 и полем error в теле
func TestDispatchUnknownResource(t *testing.T) {
	r := newAdminRouter()

	w, body := adminRequest(t, r, http.MethodGet, "/admin/api?resource=bogus", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}
	if body["error"] != "Unknown resource" {
		t.Errorf("неверное сообщение: %v", body)
	}
}

func TestDispatchMethodNotAllowed(t *testing.T) {
	r := newAdminRouter()

	w, body := adminRequest(t, r, http.MethodPatch, "/admin/api?resource=news", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}
	if body["error"] != "Method not allowed" {
		t.Errorf("неверное сообщение: %v", body)
	}
}

// Сочетания метод-ресурс вне таблицы не проходят, даже если ресурс существует
func TestDispatchResourceMethodPairs(t *testing.T) {
	r := newAdminRouter()

	// category создаётся, но не удаляется через этот API
	_, body := adminRequest(t, r, http.MethodDelete, "/admin/api?resource=category", "")
	if body["error"] != "Unknown resource" {
		t.Errorf("DELETE category должен отвергаться: %v", body)
	}
	// выборка во множественном числе, создание в единственном
	_, body = adminRequest(t, r, http.MethodPost, "/admin/api?resource=categories", "")
	if body["error"] != "Unknown resource" {
		t.Errorf("POST categories должен отвергаться: %v", body)
	}
}

func TestUpdateNewsRequiresID(t *testing.T) {
	r := newAdminRouter()

	w, body := adminRequest(t, r, http.MethodPut, "/admin/api?resource=news", `{"title":"x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}
	if body["error"] != "ID required for update" {
		t.Errorf("неверное сообщение: %v", body)
	}
}

func TestDeleteNewsRequiresID(t *testing.T) {
	r := newAdminRouter()

	_, body := adminRequest(t, r, http.MethodDelete, "/admin/api?resource=news", "")
	if body["error"] != "ID required for delete" {
		t.Errorf("неверное сообщение: %v", body)
	}
}

func TestUpdateNewsRejectsBadID(t *testing.T) {
	r := newAdminRouter()

	_, body := adminRequest(t, r, http.MethodPut, "/admin/api?resource=news&id=abc", `{"title":"x"}`)
	if body["error"] != "Invalid id" {
		t.Errorf("неверное сообщение: %v", body)
	}
}

// Preflight-запрос обрабатывается CORS-прослойкой до диспетчера
func TestDispatchPreflight(t *testing.T) {
	r := newAdminRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/admin/api?resource=news", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200 на preflight, получен %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("нет CORS-заголовка: %v", w.Header())
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("нет заголовка с разрешёнными методами")
	}
}
