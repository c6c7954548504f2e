package storage

import (
	"database/sql"
	"errors"

	"newsportal_go/models"
)

// ErrCategoryNotFound возвращается, когда рубрика с указанным ID отсутствует
var ErrCategoryNotFound = errors.New("category not found")

// GetCategories возвращает все рубрики в алфавитном порядке ярлыков (для админки)
func (db *DB) GetCategories() ([]models.Category, error) {
	return db.queryCategories(`SELECT id, code, label, color, icon FROM categories ORDER BY label`)
}

// GetCategoriesByID возвращает рубрики в порядке добавления (публичный API)
func (db *DB) GetCategoriesByID() ([]models.Category, error) {
	return db.queryCategories(`SELECT id, code, label, color, icon FROM categories ORDER BY id`)
}

func (db *DB) queryCategories(query string) ([]models.Category, error) {
	rows, err := db.Conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Code, &cat.Label, &cat.Color, &cat.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// CreateCategory сохраняет рубрику и возвращает её с присвоенным ID
func (db *DB) CreateCategory(cat models.Category) (*models.Category, error) {
	err := db.Conn.QueryRow(`INSERT INTO categories (code, label, color, icon)
                VALUES ($1, $2, $3, $4) RETURNING id`,
		cat.Code, cat.Label, cat.Color, cat.Icon).Scan(&cat.ID)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory меняет ярлык и иконку рубрики, возвращая обновлённую запись
func (db *DB) UpdateCategory(id int, label, icon string) (*models.Category, error) {
	var cat models.Category
	err := db.Conn.QueryRow(`UPDATE categories SET label = $1, icon = $2
                WHERE id = $3 RETURNING id, code, label, color, icon`,
		label, icon, id).Scan(&cat.ID, &cat.Code, &cat.Label, &cat.Color, &cat.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory удаляет рубрику по ID
func (db *DB) DeleteCategory(id int) error {
	_, err := db.Conn.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return err
}
