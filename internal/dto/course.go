// File: internal/dto/course.go
package dto

import (
	"time"

	"coursehub/internal/model"
)

// swagger:model dto.CreateCourseRequest
type CreateCourseRequest struct {
	TitleUA       string   `json:"title_ua" validate:"required,min=1,max=256"`
	TitleEN       string   `json:"title_en" validate:"required,min=1,max=256"`
	DescriptionUA string   `json:"description_ua" validate:"required,min=1,max=2048"`
	DescriptionEN string   `json:"description_en" validate:"required,min=1,max=2048"`
	Category      string   `json:"category" validate:"required,min=1,max=128"`
	Tags          []string `json:"tags" validate:"required,min=1"`
	DurationText  string   `json:"durationText" validate:"required,min=1,max=64"`
	Price         float64  `json:"price" validate:"gte=0"`
	Link          *string  `json:"link,omitempty" validate:"omitempty,url"`
	Speaker       *string  `json:"speaker,omitempty" validate:"omitempty,min=1,max=256"`
	Image         *string  `json:"image,omitempty" validate:"omitempty,min=1,max=512"`
	IsPublished   bool     `json:"isPublished"`
}

// swagger:model dto.PatchCourseRequest
type PatchCourseRequest struct {
	TitleUA       *string  `json:"title_ua,omitempty" validate:"omitempty,min=1,max=256"`
	TitleEN       *string  `json:"title_en,omitempty" validate:"omitempty,min=1,max=256"`
	DescriptionUA *string  `json:"description_ua,omitempty" validate:"omitempty,min=1,max=2048"`
	DescriptionEN *string  `json:"description_en,omitempty" validate:"omitempty,min=1,max=2048"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,min=1,max=128"`
	Tags          []string `json:"tags,omitempty"`
	DurationText  *string  `json:"durationText,omitempty" validate:"omitempty,min=1,max=64"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Link          *string  `json:"link,omitempty" validate:"omitempty,url"`
	Speaker       *string  `json:"speaker,omitempty" validate:"omitempty,min=1,max=256"`
	Image         *string  `json:"image,omitempty" validate:"omitempty,min=1,max=512"`
	IsPublished   *bool    `json:"isPublished,omitempty"`
}

// ListCoursesQuery 課程列表的查詢參數
type ListCoursesQuery struct {
	Tags         []string `query:"tags"`
	Title        *string  `query:"title"`
	Description  *string  `query:"description"`
	Category     *string  `query:"category"`
	DurationText *string  `query:"durationText"`
	PriceMin     *float64 `query:"price_min" validate:"omitempty,gte=0"`
	PriceMax     *float64 `query:"price_max" validate:"omitempty,gte=0"`
	Link         *string  `query:"link"`
	Speaker      *string  `query:"speaker"`
	Image        *string  `query:"image"`
	IsPublished  *bool    `query:"isPublished"`
	Page         int      `query:"page" validate:"omitempty,gte=1"`
	PageSize     int      `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// swagger:model dto.CourseView
type CourseView struct {
	ID            int       `json:"id" example:"1"`
	TitleUA       string    `json:"title_ua"`
	TitleEN       string    `json:"title_en"`
	DescriptionUA string    `json:"description_ua"`
	DescriptionEN string    `json:"description_en"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	DurationText  string    `json:"durationText"`
	Price         float64   `json:"price" example:"29.99"`
	Link          *string   `json:"link,omitempty"`
	Speaker       *string   `json:"speaker,omitempty"`
	Image         *string   `json:"image,omitempty"`
	IsPublished   bool      `json:"isPublished"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewCourseView 由課程模型組裝回應
func NewCourseView(c *model.Course) CourseView {
	return CourseView{
		ID:            c.ID,
		TitleUA:       c.TitleUA,
		TitleEN:       c.TitleEN,
		DescriptionUA: c.DescriptionUA,
		DescriptionEN: c.DescriptionEN,
		Category:      c.Category,
		Tags:          c.Tags,
		DurationText:  c.DurationText,
		Price:         c.Price,
		Link:          c.Link,
		Speaker:       c.Speaker,
		Image:         c.Image,
		IsPublished:   c.IsPublished,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// swagger:model dto.CoursePageResponse
type CoursePageResponse struct {
	Courses      []CourseView `json:"courses"`
	CurrentPage  int          `json:"current_page" example:"1"`
	PageSize     int          `json:"page_size" example:"20"`
	TotalCourses int          `json:"total_courses" example:"42"`
	TotalPages   int          `json:"total_pages" example:"3"`
}
