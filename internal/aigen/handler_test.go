package aigen

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAigenRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r.Group("/api"), apiKey)
	return r
}

func postGenerate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateRequiresPrompt(t *testing.T) {
	r := newAigenRouter("key")

	w := postGenerate(r, `{"contentType":"news"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался статус 400, получен %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if body["error"] != "Prompt is required" {
		t.Errorf("неверное сообщение: %q", body["error"])
	}
}

func TestGenerateMissingAPIKey(t *testing.T) {
	r := newAigenRouter("")

	w := postGenerate(r, `{"prompt":"тема"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("ожидался статус 500, получен %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if body["error"] != "API key not configured" {
		t.Errorf("неверное сообщение: %q", body["error"])
	}
}

// Режим «только картинка» не требует ключа модели и не ходит в сеть
func TestGenerateImageOnly(t *testing.T) {
	r := newAigenRouter("")

	w := postGenerate(r, `{"prompt":"закат над морем","generateImageOnly":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if !strings.HasPrefix(body["image_url"], "https://image.pollinations.ai/prompt/") {
		t.Errorf("неверная ссылка на изображение: %q", body["image_url"])
	}
}
