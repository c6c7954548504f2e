package importer

import (
	"fmt"
	"log"
	"strings"

	"github.com/mmcdole/gofeed"

	"newsportal_go/models"
)

// ImportRSS разбирает RSS-ленту источника и сохраняет новые новости черновиками.
// Пропускаются элементы без заголовка или ссылки; картинка берётся из
// media:content, при его отсутствии — из enclosure с типом image.
func (imp *Importer) ImportRSS(limit int) ([]models.News, error) {
	parser := gofeed.NewParser()
	parser.Client = imp.Client

	feed, err := parser.ParseURL(imp.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := feed.Items
	if len(items) > limit {
		items = items[:limit]
	}

	imported := []models.News{}
	for _, item := range items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		author := defaultAuthor
		if item.Author != nil && item.Author.Name != "" {
			author = item.Author.Name
		}

		saved, err := imp.saveItem(models.News{
			Title:        strings.TrimSpace(item.Title),
			Description:  truncateRunes(strings.TrimSpace(item.Description), maxDescriptionRunes),
			ImageURL:     feedItemImage(item),
			SourceURL:    item.Link,
			Author:       author,
			TimeLabel:    defaultTimeLabel,
			CategoryCode: "news",
		})
		if err != nil {
			log.Printf("[IMPORT WARN] Не удалось сохранить элемент ленты %q: %v", item.Title, err)
			continue
		}
		if saved != nil {
			imported = append(imported, *saved)
		}
	}

	log.Printf("[IMPORT] RSS-импорт завершён: %d новых новостей", len(imported))
	return imported, nil
}

// feedItemImage выбирает URL картинки элемента ленты.
// Приоритет: media:content, затем enclosure с image-типом.
func feedItemImage(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if u := content.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
