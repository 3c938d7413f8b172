// File: internal/handler/courses/patch_course.go
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

// PatchCourseHandler 部分更新課程（管理員專屬），僅提供的欄位會變更
// @Summary     Patch a course
// @Description 僅更新請求中出現的欄位，updated_at 設為當下時間
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       id path int true "課程 ID"
// @Success     200 {object} dto.CourseView
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "需要管理員權限"
// @Failure     404 {object} dto.APIError "查無課程"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /courses/{id} [patch]
func PatchCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid course id"})
		}

		var req dto.PatchCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		var tags []string
		if req.Tags != nil {
			tags, err = service.NormalizeTags(req.Tags)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
			}
		}

		course, err := service.FetchCourse(c.Request().Context(), db, id)
		if err != nil {
			return dto.DomainError(c, err)
		}

		service.ApplyCoursePatch(course, service.CoursePatch{
			TitleUA:       req.TitleUA,
			TitleEN:       req.TitleEN,
			DescriptionUA: req.DescriptionUA,
			DescriptionEN: req.DescriptionEN,
			Category:      req.Category,
			Tags:          tags,
			DurationText:  req.DurationText,
			Price:         req.Price,
			Link:          req.Link,
			Speaker:       req.Speaker,
			Image:         req.Image,
			IsPublished:   req.IsPublished,
		})

		updated, err := repository.UpdateCourse(c.Request().Context(), db, course)
		if err != nil {
			return dto.DomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewCourseView(updated))
	}
}
