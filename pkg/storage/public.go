package storage

import (
	"database/sql"
	"errors"

	"newsportal_go/models"
)

// Методы публичного API. Формат выдачи отличается от админского:
// фронтенд портала ждёт короткие имена полей (category, time, image),
// а рубрика подключается INNER JOIN — новости без рубрики наружу не отдаются.

// GetPublicNewsList возвращает ленту новостей для публичной части портала
func (db *DB) GetPublicNewsList() ([]models.PublicNews, error) {
	rows, err := db.Conn.Query(`
                SELECT n.id, n.title, n.category_code, c.label, n.time_label,
                       n.image_url, n.description, n.created_at
                FROM news n
                JOIN categories c ON n.category_code = c.code
                ORDER BY n.created_at DESC
        `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.PublicNews{}
	for rows.Next() {
		var n models.PublicNews
		if err := rows.Scan(&n.ID, &n.Title, &n.Category, &n.CategoryLabel,
			&n.Time, &n.Image, &n.Description, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// CreatePublicNews вставляет новость из публичной формы: все поля обязательны
func (db *DB) CreatePublicNews(title, categoryCode, timeLabel, imageURL, description string) (*models.PublicNews, error) {
	var n models.PublicNews
	err := db.Conn.QueryRow(`
                INSERT INTO news (title, category_code, time_label, image_url, description)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id, title, category_code, time_label, image_url, description, created_at
        `, title, categoryCode, timeLabel, imageURL, description).Scan(
		&n.ID, &n.Title, &n.Category, &n.Time, &n.Image, &n.Description, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdatePublicNews перезаписывает все пять полей новости целиком
func (db *DB) UpdatePublicNews(id int, title, categoryCode, timeLabel, imageURL, description string) (*models.PublicNews, error) {
	var n models.PublicNews
	err := db.Conn.QueryRow(`
                UPDATE news
                SET title = $1, category_code = $2, time_label = $3,
                    image_url = $4, description = $5, updated_at = NOW()
                WHERE id = $6
                RETURNING id, title, category_code, time_label, image_url, description, created_at
        `, title, categoryCode, timeLabel, imageURL, description, id).Scan(
		&n.ID, &n.Title, &n.Category, &n.Time, &n.Image, &n.Description, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &n, nil
}

// DeletePublicNews удаляет новость; дочерние записи снимает каскад внешних ключей
func (db *DB) DeletePublicNews(id int) error {
	_, err := db.Conn.Exec(`DELETE FROM news WHERE id = $1`, id)
	return err
}
