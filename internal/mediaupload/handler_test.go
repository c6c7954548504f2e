package mediaupload

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r.Group("/api"))
	return r
}

func postUpload(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUploadReturnsStubURL(t *testing.T) {
	r := newUploadRouter()

	w := postUpload(r, `{"file":"base64данные","type":"video"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if body["success"] != true {
		t.Errorf("ожидался success=true: %v", body)
	}
	if body["type"] != "video" {
		t.Errorf("тип файла должен сохраняться: %v", body["type"])
	}
	if id, _ := body["fileId"].(string); id == "" {
		t.Error("идентификатор файла не выдан")
	}
	if u, _ := body["url"].(string); !strings.Contains(u, "via.placeholder.com") {
		t.Errorf("неверная ссылка-заглушка: %q", u)
	}
}

func TestUploadDefaultsToImageType(t *testing.T) {
	r := newUploadRouter()

	w := postUpload(r, `{"file":"base64данные"}`)
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if body["type"] != "image" {
		t.Errorf("тип по умолчанию должен быть image: %v", body["type"])
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	r := newUploadRouter()

	w := postUpload(r, `{"type":"image"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался статус 400, получен %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ не является JSON: %v", err)
	}
	if body["error"] != "No file data provided" {
		t.Errorf("неверное сообщение: %q", body["error"])
	}
}

// Каждая загрузка получает уникальный идентификатор
func TestUploadGeneratesUniqueIDs(t *testing.T) {
	r := newUploadRouter()

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		w := postUpload(r, `{"file":"x"}`)
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("ответ не является JSON: %v", err)
		}
		ids[body["fileId"].(string)] = true
	}
	if len(ids) != 3 {
		t.Errorf("идентификаторы повторяются: %v", ids)
	}
}
