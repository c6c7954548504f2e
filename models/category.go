package models

// Category представляет рубрику новостей.
// code — естественный ключ, на него ссылается news.category_code.
type Category struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}
