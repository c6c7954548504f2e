package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type DB struct {
	Conn *sql.DB
}

func NewDB(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}

// InitSchema создаёт таблицы портала, если их ещё нет.
// Дочерние таблицы новостей каскадно удаляются вместе с родителем,
// поэтому публичный API может удалять новость одним запросом.
func (db *DB) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		code TEXT UNIQUE NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '#000000',
		icon TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS news (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		category_code TEXT NOT NULL DEFAULT 'news',
		time_label TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		source_url TEXT NOT NULL DEFAULT '',
		video_url TEXT NOT NULL DEFAULT '',
		priority INTEGER NOT NULL DEFAULT 0,
		moderation_status TEXT NOT NULL DEFAULT 'published',
		seo_title TEXT NOT NULL DEFAULT '',
		seo_description TEXT NOT NULL DEFAULT '',
		seo_keywords TEXT NOT NULL DEFAULT '',
		published_date TIMESTAMP NOT NULL DEFAULT NOW(),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_news_source_url ON news(source_url);
	CREATE INDEX IF NOT EXISTS idx_news_status ON news(moderation_status);

	CREATE TABLE IF NOT EXISTS news_images (
		id SERIAL PRIMARY KEY,
		news_id INTEGER NOT NULL REFERENCES news(id) ON DELETE CASCADE,
		image_url TEXT NOT NULL DEFAULT '',
		caption TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS news_links (
		id SERIAL PRIMARY KEY,
		news_id INTEGER NOT NULL REFERENCES news(id) ON DELETE CASCADE,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS news_tags (
		id SERIAL PRIMARY KEY,
		news_id INTEGER NOT NULL REFERENCES news(id) ON DELETE CASCADE,
		tag TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS banners (
		id SERIAL PRIMARY KEY,
		placement TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		media_type TEXT NOT NULL DEFAULT 'image',
		media_url TEXT NOT NULL DEFAULT '',
		link_url TEXT NOT NULL DEFAULT '',
		rsy_code TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		priority INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err := db.Conn.Exec(schema)
	return err
}
