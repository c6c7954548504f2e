package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"newsportal_go/models"
)

// ErrBannerNotFound возвращается, когда баннер с указанным ID отсутствует
var ErrBannerNotFound = errors.New("banner not found")

// bannerUpdatableColumns — белый список колонок баннера для частичного обновления
var bannerUpdatableColumns = []string{
	"placement", "title", "media_type", "media_url", "link_url",
	"rsy_code", "is_active", "priority",
}

const bannerColumns = `id, placement, title, media_type, media_url, link_url,
        rsy_code, is_active, priority, created_at, updated_at`

// GetBanners возвращает баннеры, опционально отфильтрованные по месту показа.
// Сортировка: сначала приоритетные, при равенстве — более новые.
func (db *DB) GetBanners(placement string) ([]models.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	args := []any{}
	if placement != "" {
		query += ` WHERE placement = $1`
		args = append(args, placement)
	}
	query += ` ORDER BY priority DESC, id DESC`

	rows, err := db.Conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		var b models.Banner
		if err := scanBanner(rows, &b); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

// GetBannerByID возвращает один баннер или ErrBannerNotFound
func (db *DB) GetBannerByID(id int) (*models.Banner, error) {
	var b models.Banner
	row := db.Conn.QueryRow(`SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id)
	if err := scanBanner(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return &b, nil
}

// CreateBanner сохраняет баннер и возвращает присвоенный ID
func (db *DB) CreateBanner(b models.Banner) (int, error) {
	var id int
	err := db.Conn.QueryRow(`
                INSERT INTO banners (placement, title, media_type, media_url, link_url,
                        rsy_code, is_active, priority)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                RETURNING id
        `, b.Placement, b.Title, b.MediaType, b.MediaURL, b.LinkURL,
		b.RsyCode, b.IsActive, b.Priority).Scan(&id)
	return id, err
}

// UpdateBanner обновляет только переданные поля, как UpdateNews
func (db *DB) UpdateBanner(id int, fields map[string]any) error {
	var set []string
	var args []any
	for _, col := range bannerUpdatableColumns {
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

	query := fmt.Sprintf("UPDATE banners SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	res, err := db.Conn.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrBannerNotFound
	}
	return nil
}

// DeleteBanner удаляет баннер по ID
func (db *DB) DeleteBanner(id int) error {
	_, err := db.Conn.Exec(`DELETE FROM banners WHERE id = $1`, id)
	return err
}

func scanBanner(row interface{ Scan(...any) error }, b *models.Banner) error {
	return row.Scan(&b.ID, &b.Placement, &b.Title, &b.MediaType, &b.MediaURL,
		&b.LinkURL, &b.RsyCode, &b.IsActive, &b.Priority, &b.CreatedAt, &b.UpdatedAt)
}
