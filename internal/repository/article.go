// File: internal/repository/article.go
package repository

import (
	"context"
	"fmt"

	"coursehub/internal/database"
	"coursehub/internal/model"
)

// ListArticlesByLang 回傳指定語言的新聞文章，新的在前
func ListArticlesByLang(ctx context.Context, db database.DB, lang string) ([]model.Article, error) {
	rows, err := db.Query(ctx,
		`SELECT id, lang, title, description, link, image, published_at
		 FROM articles WHERE lang = $1
		 ORDER BY published_at DESC`,
		lang,
	)
	if err != nil {
		return nil, fmt.Errorf("ListArticlesByLang: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Lang, &a.Title, &a.Description, &a.Link, &a.Image, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("ListArticlesByLang: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListArticlesByLang: %w", err)
	}
	return articles, nil
}
