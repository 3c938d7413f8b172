// File: internal/service/course.go
package service

import (
	"context"
	"errors"

	"coursehub/internal/apperr"
	"coursehub/internal/database"
	"coursehub/internal/model"
	"coursehub/internal/repository"

	"github.com/jackc/pgx/v5"
)

// CoursePatch 課程部分更新，nil 欄位保持原值
type CoursePatch struct {
	TitleUA       *string
	TitleEN       *string
	DescriptionUA *string
	DescriptionEN *string
	Category      *string
	Tags          []string
	DurationText  *string
	Price         *float64
	Link          *string
	Speaker       *string
	Image         *string
	IsPublished   *bool
}

// ApplyCoursePatch 逐欄位合併部分更新到課程上
func ApplyCoursePatch(c *model.Course, p CoursePatch) {
	if p.TitleUA != nil {
		c.TitleUA = *p.TitleUA
	}
	if p.TitleEN != nil {
		c.TitleEN = *p.TitleEN
	}
	if p.DescriptionUA != nil {
		c.DescriptionUA = *p.DescriptionUA
	}
	if p.DescriptionEN != nil {
		c.DescriptionEN = *p.DescriptionEN
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Tags != nil {
		c.Tags = p.Tags
	}
	if p.DurationText != nil {
		c.DurationText = *p.DurationText
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Link != nil {
		c.Link = p.Link
	}
	if p.Speaker != nil {
		c.Speaker = p.Speaker
	}
	if p.Image != nil {
		c.Image = p.Image
	}
	if p.IsPublished != nil {
		c.IsPublished = *p.IsPublished
	}
}

// FetchCourse 依 ID 查詢課程，查無資料回傳 apperr.ErrCourseNotFound
func FetchCourse(ctx context.Context, db database.DB, courseID int) (*model.Course, error) {
	course, err := repository.GetCourseByID(ctx, db, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// CheckCourseVisible 非管理員（含匿名）只能看到已發佈的課程
func CheckCourseVisible(course *model.Course, caller *model.User) error {
	if !caller.IsAdmin() && !course.IsPublished {
		return apperr.ErrInsufficientRights
	}
	return nil
}

// CoursePage 分頁後的課程列表
type CoursePage struct {
	Courses      []model.Course
	CurrentPage  int
	PageSize     int
	TotalCourses int
	TotalPages   int
}

// ListCourses 套用過濾條件並分頁，tags 需已由呼叫端正規化
// isPublished 過濾條件只有管理員能使用，否則回傳 apperr.ErrInsufficientFilterRights；
// 非管理員（含匿名）一律只列出已發佈的課程。
func ListCourses(
	ctx context.Context,
	db database.DB,
	caller *model.User,
	filter CourseFilter,
	tags []string,
	page, pageSize int,
) (*CoursePage, error) {
	if !caller.IsAdmin() && filter.IsPublished != nil {
		return nil, apperr.ErrInsufficientFilterRights
	}
	if !caller.IsAdmin() {
		published := true
		filter.IsPublished = &published
	}

	preds, args := BuildCourseFilters(filter, tags)
	baseSQL := repository.SelectCourses + WhereClause(preds)

	courses, total, totalPages, err := Paginate(ctx, db, baseSQL, args, "id", page, pageSize,
		func(rows pgx.Rows) (model.Course, error) { return repository.ScanCourse(rows) })
	if err != nil {
		return nil, err
	}

	return &CoursePage{
		Courses:      courses,
		CurrentPage:  page,
		PageSize:     len(courses),
		TotalCourses: total,
		TotalPages:   totalPages,
	}, nil
}
