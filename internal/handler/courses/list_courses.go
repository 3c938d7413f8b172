// File: internal/handler/courses/list_courses.go
package courses

import (
	"net/http"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/middleware"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// ListCoursesHandler 過濾與分頁課程列表
// 匿名與一般使用者只會看到已發佈的課程；isPublished 過濾條件為管理員專屬
// @Summary     List courses
// @Description 所有文字條件為不分大小寫子字串比對，tags 為集合重疊測試
// @Tags        courses
// @Produce     json
// @Param       tags query []string false "標籤（可重複）"
// @Param       title query string false "標題子字串（任一語言）"
// @Param       description query string false "描述子字串（任一語言）"
// @Param       category query string false "分類子字串"
// @Param       durationText query string false "時長文字子字串"
// @Param       price_min query number false "最低價格"
// @Param       price_max query number false "最高價格"
// @Param       isPublished query boolean false "發佈狀態（管理員專屬）"
// @Param       page query int false "頁碼（預設 1）"
// @Param       page_size query int false "每頁筆數（預設 20，最多 100）"
// @Success     200 {object} dto.CoursePageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "無權使用此過濾條件"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /courses [get]
func ListCoursesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q dto.ListCoursesQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid query parameters"})
		}
		if err := c.Validate(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if q.Page == 0 {
			q.Page = 1
		}
		if q.PageSize == 0 {
			q.PageSize = 20
		}

		tags, err := service.NormalizeTags(q.Tags)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		filter := service.CourseFilter{
			Title:        q.Title,
			Description:  q.Description,
			Category:     q.Category,
			DurationText: q.DurationText,
			PriceMin:     q.PriceMin,
			PriceMax:     q.PriceMax,
			Link:         q.Link,
			Speaker:      q.Speaker,
			Image:        q.Image,
			IsPublished:  q.IsPublished,
		}

		page, err := service.ListCourses(c.Request().Context(), db, middleware.CurrentUser(c), filter, tags, q.Page, q.PageSize)
		if err != nil {
			return dto.DomainError(c, err)
		}

		views := make([]dto.CourseView, 0, len(page.Courses))
		for i := range page.Courses {
			views = append(views, dto.NewCourseView(&page.Courses[i]))
		}
		return c.JSON(http.StatusOK, dto.CoursePageResponse{
			Courses:      views,
			CurrentPage:  page.CurrentPage,
			PageSize:     page.PageSize,
			TotalCourses: page.TotalCourses,
			TotalPages:   page.TotalPages,
		})
	}
}
