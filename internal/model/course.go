// File: internal/model/course.go
package model

import "time"

type Course struct {
	ID            int       `db:"id" json:"id"`
	TitleUA       string    `db:"title_ua" json:"title_ua"`
	TitleEN       string    `db:"title_en" json:"title_en"`
	DescriptionUA string    `db:"description_ua" json:"description_ua"`
	DescriptionEN string    `db:"description_en" json:"description_en"`
	Category      string    `db:"category" json:"category"`
	Tags          []string  `db:"tags" json:"tags"`
	DurationText  string    `db:"duration_text" json:"durationText"`
	Price         float64   `db:"price" json:"price"`
	Link          *string   `db:"link" json:"link,omitempty"`
	Speaker       *string   `db:"speaker" json:"speaker,omitempty"`
	Image         *string   `db:"image" json:"image,omitempty"`
	IsPublished   bool      `db:"is_published" json:"isPublished"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
