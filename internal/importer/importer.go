package importer

import (
	"net/http"
	"time"

	"newsportal_go/models"
)

// NewsStore — минимальный контракт хранилища для импорта.
// Выделен в интерфейс, чтобы адаптеры можно было проверять без настоящей БД.
type NewsStore interface {
	NewsExistsBySource(sourceURL string) (bool, error)
	CreateImportedNews(n models.News) (*models.News, error)
}

// Importer тянет новости с внешнего портала двумя независимыми способами:
// разбором HTML-страницы и разбором RSS-ленты. Оба идемпотентны по source_url.
type Importer struct {
	Store      NewsStore
	Client     *http.Client
	SourceURL  string
	FeedURL    string
	Strategies []Strategy
}

func New(store NewsStore, sourceURL, feedURL string, strategies []Strategy) *Importer {
	return &Importer{
		Store:      store,
		Client:     &http.Client{Timeout: 10 * time.Second},
		SourceURL:  sourceURL,
		FeedURL:    feedURL,
		Strategies: strategies,
	}
}

// defaultAuthor подставляется, когда источник не указал автора
const defaultAuthor = "GlobalMsk.ru"

// defaultTimeLabel — метка времени для свежеимпортированных новостей
const defaultTimeLabel = "Только что"

// maxDescriptionRunes — потолок длины описания при импорте
const maxDescriptionRunes = 500

// truncateRunes обрезает строку до limit рун, не разрывая символы UTF-8
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
