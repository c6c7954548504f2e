package main

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"newsportal_go/internal/aigen"
	"newsportal_go/internal/config"
	"newsportal_go/internal/importer"
	"newsportal_go/internal/mediaupload"
	"newsportal_go/internal/middleware"
	"newsportal_go/internal/newsadmin"
	"newsportal_go/internal/public"
	"newsportal_go/internal/weather"
	"newsportal_go/pkg/storage"
)

func main() {
	// .env опционален: в проде переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] .env не найден, используется окружение")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Инициализация подключения к БД
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	// Проверка подключения
	if err := dbConn.Ping(); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	db := storage.NewDB(dbConn)
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// Стратегии разбора HTML источника — из конфига, с встроенным запасным набором
	strategies, err := importer.LoadStrategies(cfg.ScraperConfigPath)
	if err != nil {
		log.Fatalf("Failed to load scraper config: %v", err)
	}
	imp := importer.New(db, cfg.ImportSourceURL, cfg.ImportFeedURL, strategies)

	// Настройка роутера
	r := setupRouter(db, imp, cfg)

	// Запуск сервера
	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// Настройка маршрутов
func setupRouter(db *storage.DB, imp *importer.Importer, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS())

	// Публичное API портала и вспомогательные прокси
	apiGroup := r.Group("/api")
	public.SetupRoutes(apiGroup, db)
	weather.SetupRoutes(apiGroup, cfg.OpenWeatherAPIKey)
	aigen.SetupRoutes(apiGroup, cfg.GeminiAPIKey)
	mediaupload.SetupRoutes(apiGroup)

	// Админка работает через единую точку с выбором ресурса параметром
	adminGroup := r.Group("/admin")
	newsadmin.SetupRoutes(adminGroup, db, imp, cfg.NewsDeleteMode, cfg.ImportLimit)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Логирование зарегистрированных роутов
	log.Printf("[ROUTER] Routes initialized:")
	log.Printf("[ROUTER] ANY /admin/api?resource=...")
	log.Printf("[ROUTER] GET|POST|PUT|DELETE /api/news")
	log.Printf("[ROUTER] GET|POST|PUT|DELETE /api/categories")
	log.Printf("[ROUTER] GET /api/weather")
	log.Printf("[ROUTER] POST /api/generate")
	log.Printf("[ROUTER] POST /api/upload")
	log.Printf("[ROUTER] GET /health")

	return r
}
