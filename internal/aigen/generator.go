package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// contentTypePrompts — инструкции модели по типу материала.
// Неизвестный тип сводится к новости.
var contentTypePrompts = map[string]string{
	"news":          "Напиши новость в журналистском стиле. Используй факты и объективный тон.",
	"article":       "Напиши аналитическую статью с экспертным мнением и детальным разбором темы.",
	"biography":     "Напиши биографию личности с хронологией событий и достижениями.",
	"press-release": "Напиши официальный пресс-релиз в корпоративном стиле.",
	"blog":          "Напиши блог-пост в неформальном стиле с личным мнением.",
	"horoscope":     "Напиши гороскоп с предсказаниями и советами.",
}

const defaultContentType = "news"

// GeneratedContent — итог генерации, который уходит в редактор новости
type GeneratedContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Generator — клиент текстовой модели. Ключ может быть пустым:
// тогда обработчик откажет с кодом 500 ещё до обращения к API.
type Generator struct {
	APIKey string
	Model  string
}

func NewGenerator(apiKey string) *Generator {
	return &Generator{APIKey: apiKey, Model: "gemini-1.5-flash"}
}

// Generate отправляет запрос модели и возвращает сырой текст ответа
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.Model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(fmt.Sprintf("%v", part))
	}
	return sb.String(), nil
}

// BuildPrompt собирает итоговый промпт: инструкция по типу материала,
// тема и требование строгого JSON на выходе
func BuildPrompt(userPrompt, contentType string) string {
	instruction, ok := contentTypePrompts[contentType]
	if !ok {
		instruction = contentTypePrompts[defaultContentType]
	}

	return fmt.Sprintf(`%s

Тема: %s

Верни результат СТРОГО в формате JSON:
{
  "title": "Заголовок материала",
  "description": "Краткое описание (2-3 предложения)",
  "content": "<p>Полный HTML текст с тегами p, h2, h3, ul, li, strong, em</p>"
}

Требования к контенту:
- Заголовок: яркий, цепляющий, до 100 символов
- Описание: информативное, 2-3 предложения
- Контент: структурированный HTML, минимум 3 абзаца
- Используй HTML теги: <h2>, <h3>, <p>, <strong>, <em>, <ul>, <li>
- Пиши на русском языке
- НЕ используй markdown, только HTML
`, instruction, userPrompt)
}

// ParseGenerated вытаскивает из ответа модели первый сбалансированный
// JSON-объект. Если распарсить не удалось, ответ заворачивается в
// минимальную форму вместо ошибки: лучше черновик, чем отказ.
func ParseGenerated(raw, userPrompt string) GeneratedContent {
	var content GeneratedContent
	if jsonStr := extractJSONObject(raw); jsonStr != "" {
		if err := json.Unmarshal([]byte(jsonStr), &content); err == nil {
			return content
		}
	}
	return GeneratedContent{
		Title:       "Сгенерированный контент",
		Description: userPrompt,
		Content:     "<p>" + raw + "</p>",
	}
}

// extractJSONObject возвращает первую сбалансированную подстроку {...}.
// Скобки внутри строковых литералов не считаются.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	// Объект не закрылся — пробуем до последней закрывающей скобки
	if end := strings.LastIndex(s, "}"); end > start {
		return s[start : end+1]
	}
	return ""
}

// ImageURL строит детерминированную ссылку на сервис генерации изображений.
// Обращения к текстовой модели при этом не происходит.
func ImageURL(prompt string) string {
	return "https://image.pollinations.ai/prompt/" + url.PathEscape(prompt) +
		"?width=1200&height=630&nologo=true"
}
