package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"newsportal_go/models"
)

// ErrNewsNotFound возвращается, когда новость с указанным ID отсутствует в БД
var ErrNewsNotFound = errors.New("news not found")

// ErrNoUpdateFields возвращается, если в частичном обновлении не передано ни одного поля
var ErrNoUpdateFields = errors.New("no fields to update")

// newsUpdatableColumns — белый список колонок, доступных для частичного обновления.
// Порядок фиксирован, чтобы SET-часть запроса строилась детерминированно.
var newsUpdatableColumns = []string{
	"title", "category_code", "time_label", "image_url", "description",
	"content", "author", "source_url", "video_url", "priority",
	"moderation_status", "seo_title", "seo_description", "seo_keywords",
}

// GetNewsList возвращает новости по фильтру админки.
// Статус применяется всегда, категория — опционально. LEFT JOIN допускает
// новости с несуществующей рубрикой: у них category_label будет пустым.
func (db *DB) GetNewsList(f models.NewsFilter) ([]models.News, error) {
	args := []any{f.Status}
	where := "n.moderation_status = $1"
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND n.category_code = $%d", len(args))
	}
	args = append(args, f.Limit, f.Offset)

	query := fmt.Sprintf(`
                SELECT n.id, n.title, n.category_code, c.label, n.time_label, n.image_url,
                       n.description, n.content, n.author, n.source_url, n.video_url,
                       n.priority, n.moderation_status, n.seo_title, n.seo_description,
                       n.seo_keywords, n.published_date, n.created_at, n.updated_at
                FROM news n
                LEFT JOIN categories c ON n.category_code = c.code
                WHERE %s
                ORDER BY n.published_date DESC, n.id DESC
                LIMIT $%d OFFSET $%d
        `, where, len(args)-1, len(args))

	rows, err := db.Conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *n)
	}
	return list, rows.Err()
}

// GetNewsDetail возвращает новость с изображениями, ссылками и тегами.
// Отсутствие строки — типизированная ошибка ErrNewsNotFound, а не сбой.
func (db *DB) GetNewsDetail(id int) (*models.News, error) {
	row := db.Conn.QueryRow(`
                SELECT n.id, n.title, n.category_code, c.label, n.time_label, n.image_url,
                       n.description, n.content, n.author, n.source_url, n.video_url,
                       n.priority, n.moderation_status, n.seo_title, n.seo_description,
                       n.seo_keywords, n.published_date, n.created_at, n.updated_at
                FROM news n
                LEFT JOIN categories c ON n.category_code = c.code
                WHERE n.id = $1
        `, id)

	n, err := scanNews(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	if n.Images, err = db.getNewsImages(id); err != nil {
		return nil, err
	}
	if n.Links, err = db.getNewsLinks(id); err != nil {
		return nil, err
	}
	if n.Tags, err = db.getNewsTags(id); err != nil {
		return nil, err
	}
	return n, nil
}

// CreateNews сохраняет новость и её дочерние коллекции одной транзакцией.
// position каждого изображения и ссылки равен индексу в переданном массиве.
func (db *DB) CreateNews(input models.NewsInput) (int, error) {
	status := input.ModerationStatus
	if status == "" {
		status = models.StatusPublished
	}

	tx, err := db.Conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`
                INSERT INTO news (title, category_code, time_label, image_url, description,
                        content, author, source_url, video_url, priority, moderation_status,
                        seo_title, seo_description, seo_keywords)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
                RETURNING id
        `, input.Title, input.CategoryCode, input.TimeLabel, input.ImageURL, input.Description,
		input.Content, input.Author, input.SourceURL, input.VideoURL, input.Priority,
		status, input.SeoTitle, input.SeoDescription, input.SeoKeywords).Scan(&id)
	if err != nil {
		return 0, err
	}

	for idx, img := range input.Images {
		if _, err := tx.Exec(`INSERT INTO news_images (news_id, image_url, caption, position)
                        VALUES ($1, $2, $3, $4)`, id, img.URL, img.Caption, idx); err != nil {
			return 0, err
		}
	}
	for idx, link := range input.Links {
		if _, err := tx.Exec(`INSERT INTO news_links (news_id, title, url, position)
                        VALUES ($1, $2, $3, $4)`, id, link.Title, link.URL, idx); err != nil {
			return 0, err
		}
	}
	for _, tag := range input.Tags {
		if _, err := tx.Exec(`INSERT INTO news_tags (news_id, tag)
                        VALUES ($1, $2)`, id, tag); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateNews обновляет только переданные поля и всегда проставляет updated_at.
// Имена колонок берутся из белого списка, значения уходят параметрами.
func (db *DB) UpdateNews(id int, fields map[string]any) error {
	var set []string
	var args []any
	for _, col := range newsUpdatableColumns {
		v, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(set) == 0 {
		return ErrNoUpdateFields
	}
	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE news SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	res, err := db.Conn.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// DeleteNewsHard удаляет новость вместе с дочерними записями одной транзакцией
func (db *DB) DeleteNewsHard(id int) error {
	tx, err := db.Conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM news_tags WHERE news_id = $1`,
		`DELETE FROM news_links WHERE news_id = $1`,
		`DELETE FROM news_images WHERE news_id = $1`,
		`DELETE FROM news WHERE id = $1`,
	} {
		if _, err := tx.Exec(query, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteNewsSoft помечает новость удалённой без каскада по дочерним таблицам.
// Такие новости выпадают из выдачи по статусу published.
func (db *DB) DeleteNewsSoft(id int) error {
	_, err := db.Conn.Exec(`UPDATE news SET moderation_status = $1, updated_at = NOW()
                WHERE id = $2`, models.StatusDeleted, id)
	return err
}

// NewsExistsBySource проверяет, импортировалась ли уже новость с таким source_url
func (db *DB) NewsExistsBySource(sourceURL string) (bool, error) {
	var count int
	err := db.Conn.QueryRow(`SELECT COUNT(*) FROM news WHERE source_url = $1`, sourceURL).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateImportedNews вставляет новость из внешнего источника.
// Статус всегда draft: автоматический импорт никогда не публикует сам.
func (db *DB) CreateImportedNews(n models.News) (*models.News, error) {
	err := db.Conn.QueryRow(`
                INSERT INTO news (title, description, image_url, source_url, author,
                        time_label, category_code, moderation_status)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                RETURNING id
        `, n.Title, n.Description, n.ImageURL, n.SourceURL, n.Author,
		n.TimeLabel, n.CategoryCode, models.StatusDraft).Scan(&n.ID)
	if err != nil {
		return nil, err
	}
	n.ModerationStatus = models.StatusDraft
	return &n, nil
}

// GetNewsStats возвращает общее количество новостей и разбивку по статусам
func (db *DB) GetNewsStats() (*models.NewsStats, error) {
	stats := &models.NewsStats{ByStatus: []models.StatusCount{}}

	if err := db.Conn.QueryRow(`SELECT COUNT(*) FROM news`).Scan(&stats.Total); err != nil {
		return nil, err
	}

	rows, err := db.Conn.Query(`SELECT moderation_status, COUNT(*) FROM news GROUP BY moderation_status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sc models.StatusCount
		if err := rows.Scan(&sc.ModerationStatus, &sc.Count); err != nil {
			return nil, err
		}
		stats.ByStatus = append(stats.ByStatus, sc)
	}
	return stats, rows.Err()
}

// scanNews читает строку новости из общего списка колонок списка/детали
func scanNews(row interface{ Scan(...any) error }) (*models.News, error) {
	var n models.News
	var label sql.NullString
	err := row.Scan(
		&n.ID, &n.Title, &n.CategoryCode, &label, &n.TimeLabel, &n.ImageURL,
		&n.Description, &n.Content, &n.Author, &n.SourceURL, &n.VideoURL,
		&n.Priority, &n.ModerationStatus, &n.SeoTitle, &n.SeoDescription,
		&n.SeoKeywords, &n.PublishedDate, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	n.CategoryLabel = label.String
	return &n, nil
}

func (db *DB) getNewsImages(newsID int) ([]models.NewsImage, error) {
	rows, err := db.Conn.Query(`SELECT id, news_id, image_url, caption, position
                FROM news_images WHERE news_id = $1 ORDER BY position`, newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.NewsImage{}
	for rows.Next() {
		var img models.NewsImage
		if err := rows.Scan(&img.ID, &img.NewsID, &img.URL, &img.Caption, &img.Position); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (db *DB) getNewsLinks(newsID int) ([]models.NewsLink, error) {
	rows, err := db.Conn.Query(`SELECT id, news_id, title, url, position
                FROM news_links WHERE news_id = $1 ORDER BY position`, newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []models.NewsLink{}
	for rows.Next() {
		var link models.NewsLink
		if err := rows.Scan(&link.ID, &link.NewsID, &link.Title, &link.URL, &link.Position); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (db *DB) getNewsTags(newsID int) ([]string, error) {
	rows, err := db.Conn.Query(`SELECT tag FROM news_tags WHERE news_id = $1`, newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
