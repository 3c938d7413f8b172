// File: internal/handler/courses/delete_course.go
package courses

import (
	"net/http"
	"strconv"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/repository"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// DeleteCourseHandler 刪除課程（管理員專屬）
// @Summary     Delete a course
// @Tags        courses
// @Param       id path int true "課程 ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "需要管理員權限"
// @Failure     404 {object} dto.APIError "查無課程"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /courses/{id} [delete]
func DeleteCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid course id"})
		}

		if _, err := service.FetchCourse(c.Request().Context(), db, id); err != nil {
			return dto.DomainError(c, err)
		}
		if err := repository.DeleteCourse(c.Request().Context(), db, id); err != nil {
			return dto.DomainError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
