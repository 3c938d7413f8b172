// File: internal/repository/course.go
package repository

import (
	"context"
	"fmt"

	"coursehub/internal/database"
	"coursehub/internal/model"

	"github.com/jackc/pgx/v5"
)

// SelectCourses 課程列表查詢的基底，供分頁器組合 WHERE 與 LIMIT/OFFSET
const SelectCourses = `SELECT id, title_ua, title_en, description_ua, description_en, category, tags, duration_text, price, link, speaker, image, is_published, created_at, updated_at FROM courses`

// ScanCourse 從查詢結果掃描單筆課程
func ScanCourse(row pgx.Row) (model.Course, error) {
	var c model.Course
	err := row.Scan(
		&c.ID,
		&c.TitleUA,
		&c.TitleEN,
		&c.DescriptionUA,
		&c.DescriptionEN,
		&c.Category,
		&c.Tags,
		&c.DurationText,
		&c.Price,
		&c.Link,
		&c.Speaker,
		&c.Image,
		&c.IsPublished,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func GetCourseByID(ctx context.Context, db database.DB, courseID int) (*model.Course, error) {
	row := db.QueryRow(ctx, SelectCourses+` WHERE id = $1`, courseID)
	c, err := ScanCourse(row)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCourse(ctx context.Context, db database.DB, c *model.Course) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO courses (title_ua, title_en, description_ua, description_en, category, tags, duration_text, price, link, speaker, image, is_published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		c.TitleUA,
		c.TitleEN,
		c.DescriptionUA,
		c.DescriptionEN,
		c.Category,
		c.Tags,
		c.DurationText,
		c.Price,
		c.Link,
		c.Speaker,
		c.Image,
		c.IsPublished,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateCourse: %w", err)
	}
	return c, nil
}

// UpdateCourse 寫回合併後的完整課程，updated_at 由資料庫設為當下時間
func UpdateCourse(ctx context.Context, db database.DB, c *model.Course) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`UPDATE courses
		 SET title_ua = $1, title_en = $2, description_ua = $3, description_en = $4,
		     category = $5, tags = $6, duration_text = $7, price = $8,
		     link = $9, speaker = $10, image = $11, is_published = $12,
		     updated_at = now()
		 WHERE id = $13
		 RETURNING updated_at`,
		c.TitleUA,
		c.TitleEN,
		c.DescriptionUA,
		c.DescriptionEN,
		c.Category,
		c.Tags,
		c.DurationText,
		c.Price,
		c.Link,
		c.Speaker,
		c.Image,
		c.IsPublished,
		c.ID,
	)
	if err := row.Scan(&c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpdateCourse: %w", err)
	}
	return c, nil
}

func DeleteCourse(ctx context.Context, db database.DB, courseID int) error {
	_, err := db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("DeleteCourse: %w", err)
	}
	return nil
}
