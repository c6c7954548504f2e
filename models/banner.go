package models

import "time"

// Banner — рекламный блок. placement определяет место показа на портале,
// rsy_code — код вставки рекламной сети, используется вместо media_url.
type Banner struct {
	ID        int       `json:"id"`
	Placement string    `json:"placement"`
	Title     string    `json:"title"`
	MediaType string    `json:"media_type"`
	MediaURL  string    `json:"media_url"`
	LinkURL   string    `json:"link_url"`
	RsyCode   string    `json:"rsy_code"`
	IsActive  bool      `json:"is_active"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
