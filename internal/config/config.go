package config

import (
	"fmt"
	"os"
	"strconv"
)

// Режимы удаления новостей в админке. В базе исторически жили две версии
// обработчика — с жёстким и мягким удалением; здесь выбор вынесен в конфигурацию.
const (
	DeleteModeSoft = "soft"
	DeleteModeHard = "hard"
)

type Config struct {
	// Обязательные параметры
	DatabaseURL string

	// Ключи внешних сервисов. Пустой ключ не валит запуск:
	// соответствующий обработчик ответит 500 с описанием проблемы.
	GeminiAPIKey      string
	OpenWeatherAPIKey string

	// HTTP
	Port string

	// Импорт новостей
	ImportSourceURL   string
	ImportFeedURL     string
	ImportLimit       int
	ScraperConfigPath string

	// Семантика удаления новостей: soft | hard
	NewsDeleteMode string
}

// Load читает конфигурацию из переменных окружения и проверяет её
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		Port:              getEnvOrDefault("PORT", "8080"),
		ImportSourceURL:   getEnvOrDefault("IMPORT_SOURCE_URL", "https://www.globalmsk.ru/"),
		ImportFeedURL:     getEnvOrDefault("IMPORT_FEED_URL", "https://globalmsk.ru/dzen.php"),
		ImportLimit:       getEnvIntOrDefault("IMPORT_LIMIT", 20),
		ScraperConfigPath: getEnvOrDefault("SCRAPER_CONFIG_PATH", "configs/scraper.yaml"),
		NewsDeleteMode:    getEnvOrDefault("NEWS_DELETE_MODE", DeleteModeSoft),
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.NewsDeleteMode != DeleteModeSoft && c.NewsDeleteMode != DeleteModeHard {
		return fmt.Errorf("NEWS_DELETE_MODE must be '%s' or '%s'", DeleteModeSoft, DeleteModeHard)
	}
	if c.ImportLimit <= 0 {
		return fmt.Errorf("IMPORT_LIMIT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
