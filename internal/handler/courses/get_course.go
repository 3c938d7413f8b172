// File: internal/handler/courses/get_course.go
package courses

import (
	"net/http"
	"strconv"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/middleware"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// GetCourseHandler 取得單一課程
// 匿名與一般使用者只能查看已發佈的課程
// @Summary     Get a single course
// @Tags        courses
// @Produce     json
// @Param       id path int true "課程 ID"
// @Success     200 {object} dto.CourseView
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "課程尚未發佈"
// @Failure     404 {object} dto.APIError "查無課程"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /courses/{id} [get]
func GetCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid course id"})
		}

		course, err := service.FetchCourse(c.Request().Context(), db, id)
		if err != nil {
			return dto.DomainError(c, err)
		}

		if err := service.CheckCourseVisible(course, middleware.CurrentUser(c)); err != nil {
			return dto.DomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewCourseView(course))
	}
}
