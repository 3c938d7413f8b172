// File: internal/dto/article.go
package dto

import (
	"time"

	"coursehub/internal/model"
)

// swagger:model dto.NewsItem
type NewsItem struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        *string   `json:"link,omitempty"`
	Image       *string   `json:"image,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// NewNewsItems 由文章模型組裝回應列表
func NewNewsItems(articles []model.Article) []NewsItem {
	items := make([]NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, NewsItem{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Link:        a.Link,
			Image:       a.Image,
			PublishedAt: a.PublishedAt,
		})
	}
	return items
}
