package models

// NewsStats — сводка по новостям для панели администратора
type NewsStats struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
}

// StatusCount — количество новостей в одном статусе модерации
type StatusCount struct {
	ModerationStatus string `json:"moderation_status"`
	Count            int    `json:"count"`
}
