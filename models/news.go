package models

import "time"

// Статусы модерации новости
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusDeleted   = "deleted"
)

// News представляет новость в админском формате: все колонки таблицы
// плюс дочерние коллекции. Дочерние поля заполняются только в детальной
// выдаче, в списках они опускаются.
type News struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	CategoryCode     string      `json:"category_code"`
	CategoryLabel    string      `json:"category_label"`
	TimeLabel        string      `json:"time_label"`
	ImageURL         string      `json:"image_url"`
	Description      string      `json:"description"`
	Content          string      `json:"content"`
	Author           string      `json:"author"`
	SourceURL        string      `json:"source_url"`
	VideoURL         string      `json:"video_url"`
	Priority         int         `json:"priority"`
	ModerationStatus string      `json:"moderation_status"`
	SeoTitle         string      `json:"seo_title"`
	SeoDescription   string      `json:"seo_description"`
	SeoKeywords      string      `json:"seo_keywords"`
	PublishedDate    time.Time   `json:"published_date"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	Images           []NewsImage `json:"images,omitempty"`
	Links            []NewsLink  `json:"links,omitempty"`
	Tags             []string    `json:"tags,omitempty"`
}

// NewsImage — изображение новости, порядок задаётся полем position
type NewsImage struct {
	ID       int    `json:"id"`
	NewsID   int    `json:"news_id"`
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

// NewsLink — внешняя ссылка новости
type NewsLink struct {
	ID       int    `json:"id"`
	NewsID   int    `json:"news_id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// NewsInput — тело запроса на создание новости в админке
type NewsInput struct {
	Title            string           `json:"title"`
	CategoryCode     string           `json:"category_code"`
	TimeLabel        string           `json:"time_label"`
	ImageURL         string           `json:"image_url"`
	Description      string           `json:"description"`
	Content          string           `json:"content"`
	Author           string           `json:"author"`
	SourceURL        string           `json:"source_url"`
	VideoURL         string           `json:"video_url"`
	Priority         int              `json:"priority"`
	ModerationStatus string           `json:"moderation_status"`
	SeoTitle         string           `json:"seo_title"`
	SeoDescription   string           `json:"seo_description"`
	SeoKeywords      string           `json:"seo_keywords"`
	Images           []NewsImageInput `json:"images"`
	Links            []NewsLinkInput  `json:"links"`
	Tags             []string         `json:"tags"`
}

// NewsImageInput — изображение в теле запроса, позиция выводится из индекса
type NewsImageInput struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// NewsLinkInput — ссылка в теле запроса
type NewsLinkInput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewsFilter — параметры выборки списка новостей в админке
type NewsFilter struct {
	Category string
	Status   string
	Limit    int
	Offset   int
}

// PublicNews — новость в формате публичного API: короткие имена полей,
// рубрика обязательна (INNER JOIN по category_code).
type PublicNews struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label,omitempty"`
	Time          string    `json:"time"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
