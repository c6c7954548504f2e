package importer

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsportal_go/models"
)

// scrapedItem — сырые данные одного новостного блока со страницы
type scrapedItem struct {
	Title        string
	SourceURL    string
	ImageURL     string
	TimeLabel    string
	CategoryCode string
	Description  string
}

// ImportHTML разбирает главную страницу источника и сохраняет новые новости
// черновиками. Стратегии пробуются по порядку, побеждает первая, давшая
// хотя бы один блок. limit — жёсткий потолок просматриваемых блоков,
// а не количество результатов. Ошибки отдельных блоков логируются и не
// прерывают пакет.
func (imp *Importer) ImportHTML(limit int) ([]models.News, error) {
	resp, err := imp.Client.Get(imp.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("source page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source page: %w", err)
	}

	base, err := url.Parse(imp.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source url: %w", err)
	}

	var items []scrapedItem
	for _, strat := range imp.Strategies {
		items = imp.extractItems(doc, base, strat, limit)
		if len(items) > 0 {
			log.Printf("[IMPORT] Стратегия %q дала %d блоков", strat.Name, len(items))
			break
		}
	}

	imported := []models.News{}
	for _, item := range items {
		saved, err := imp.saveItem(models.News{
			Title:        item.Title,
			CategoryCode: item.CategoryCode,
			TimeLabel:    item.TimeLabel,
			ImageURL:     item.ImageURL,
			SourceURL:    item.SourceURL,
			Description:  item.Description,
			Author:       defaultAuthor,
		})
		if err != nil {
			// Сбой одного блока не прерывает импорт остальных
			log.Printf("[IMPORT WARN] Не удалось сохранить %q: %v", item.Title, err)
			continue
		}
		if saved != nil {
			imported = append(imported, *saved)
		}
	}

	log.Printf("[IMPORT] HTML-импорт завершён: %d новых новостей", len(imported))
	return imported, nil
}

// extractItems применяет одну стратегию к документу.
// limit ограничивает количество просмотренных блоков до фильтрации.
func (imp *Importer) extractItems(doc *goquery.Document, base *url.URL, strat Strategy, limit int) []scrapedItem {
	var items []scrapedItem
	scanned := 0

	doc.Find(strat.Item).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if scanned >= limit {
			return false
		}
		scanned++

		// Блок может быть как самой ссылкой, так и контейнером с ссылкой внутри
		href := s.AttrOr("href", "")
		if href == "" {
			href = s.Find("a[href]").First().AttrOr("href", "")
		}
		if href == "" {
			return true
		}

		title := ""
		if strat.Title != "" {
			title = strings.TrimSpace(s.Find(strat.Title).First().Text())
		} else {
			title = strings.TrimSpace(s.Text())
		}
		if title == "" {
			return true
		}

		item := scrapedItem{
			Title:        title,
			SourceURL:    resolveURL(base, href),
			TimeLabel:    defaultTimeLabel,
			CategoryCode: "news",
		}

		if strat.Image != "" {
			if src := s.Find(strat.Image).First().AttrOr("src", ""); src != "" {
				item.ImageURL = resolveURL(base, src)
			}
		}
		if strat.Time != "" {
			if t := strings.TrimSpace(s.Find(strat.Time).First().Text()); t != "" {
				item.TimeLabel = t
			}
		}
		if strat.Category != "" {
			if catHref := s.Find(strat.Category).First().AttrOr("href", ""); catHref != "" {
				if code := lastPathSegment(catHref); code != "" {
					item.CategoryCode = code
				}
			}
		}
		if strat.Description != "" {
			item.Description = truncateRunes(strings.TrimSpace(s.Find(strat.Description).First().Text()), maxDescriptionRunes)
		}

		items = append(items, item)
		return true
	})

	return items
}

// saveItem сохраняет новость, если её source_url ещё не встречался.
// Возвращает nil без ошибки для дубликатов.
func (imp *Importer) saveItem(n models.News) (*models.News, error) {
	exists, err := imp.Store.NewsExistsBySource(n.SourceURL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}
	return imp.Store.CreateImportedNews(n)
}

// resolveURL приводит относительный адрес к абсолютному относительно источника
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// lastPathSegment возвращает последний сегмент пути ссылки: /category/politika -> politika
func lastPathSegment(href string) string {
	href = strings.TrimRight(href, "/")
	if idx := strings.LastIndex(href, "/"); idx >= 0 {
		return href[idx+1:]
	}
	return href
}
