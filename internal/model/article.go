// File: internal/model/article.go
package model

import "time"

type Article struct {
	ID          int       `db:"id" json:"id"`
	Lang        string    `db:"lang" json:"lang"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Link        *string   `db:"link" json:"link,omitempty"`
	Image       *string   `db:"image" json:"image,omitempty"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
}
