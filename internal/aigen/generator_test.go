package aigen

import (
	"strings"
	"testing"
)

func TestBuildPromptSelectsInstruction(t *testing.T) {
	prompt := BuildPrompt("Прогноз для Овнов", "horoscope")
	if !strings.Contains(prompt, "гороскоп") {
		t.Errorf("инструкция для гороскопа не подставлена: %s", prompt)
	}
	if !strings.Contains(prompt, "Тема: Прогноз для Овнов") {
		t.Errorf("тема пользователя не подставлена: %s", prompt)
	}
	if !strings.Contains(prompt, "СТРОГО в формате JSON") {
		t.Errorf("требование JSON-формата отсутствует: %s", prompt)
	}
}

func TestBuildPromptUnknownTypeFallsBackToNews(t *testing.T) {
	prompt := BuildPrompt("Тема", "podcast")
	if !strings.Contains(prompt, "новость в журналистском стиле") {
		t.Errorf("неизвестный тип должен сводиться к новости: %s", prompt)
	}
}

func TestParseGeneratedExtractsJSON(t *testing.T) {
	raw := "Вот результат:\n{\"title\":\"Заголовок\",\"description\":\"Описание\",\"content\":\"<p>Текст</p>\"}\nГотово."
	content := ParseGenerated(raw, "тема")
	if content.Title != "Заголовок" || content.Description != "Описание" || content.Content != "<p>Текст</p>" {
		t.Errorf("JSON из ответа разобран неверно: %+v", content)
	}
}

// Скобки внутри строковых значений не должны ломать поиск границ объекта
func TestParseGeneratedBracesInsideStrings(t *testing.T) {
	raw := `ответ: {"title":"A","description":"B","content":"<p>пример {кода}</p>"} конец`
	content := ParseGenerated(raw, "тема")
	if content.Content != "<p>пример {кода}</p>" {
		t.Errorf("скобки в строке сломали разбор: %+v", content)
	}
}

func TestParseGeneratedFallbackWrapsRawText(t *testing.T) {
	content := ParseGenerated("просто текст без JSON", "исходная тема")
	if content.Title != "Сгенерированный контент" {
		t.Errorf("неверный заголовок запасной формы: %q", content.Title)
	}
	if content.Description != "исходная тема" {
		t.Errorf("описание запасной формы должно быть темой запроса: %q", content.Description)
	}
	if content.Content != "<p>просто текст без JSON</p>" {
		t.Errorf("сырой текст должен заворачиваться в абзац: %q", content.Content)
	}
}

func TestExtractJSONObject(t *testing.T) {
	if got := extractJSONObject(`до {"a":{"b":1}} после`); got != `{"a":{"b":1}}` {
		t.Errorf("вложенный объект извлечён неверно: %q", got)
	}
	if got := extractJSONObject("нет объекта"); got != "" {
		t.Errorf("без скобок должна возвращаться пустая строка: %q", got)
	}
	// Незакрытый объект добирается до последней закрывающей скобки
	if got := extractJSONObject(`{"a":1} хвост }`); got == "" {
		t.Error("незакрытый объект не должен теряться")
	}
}

func TestImageURLEscapesPrompt(t *testing.T) {
	u := ImageURL("закат над морем")
	if strings.Contains(u, " ") {
		t.Errorf("пробелы должны экранироваться: %q", u)
	}
	if !strings.HasPrefix(u, "https://image.pollinations.ai/prompt/") {
		t.Errorf("неверный адрес сервиса: %q", u)
	}
	if !strings.Contains(u, "width=1200") || !strings.Contains(u, "height=630") {
		t.Errorf("размеры изображения не заданы: %q", u)
	}
}
