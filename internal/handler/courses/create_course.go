// File: internal/handler/courses/create_course.go
package courses

import (
	"net/http"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/model"
	"coursehub/internal/repository"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// CreateCourseHandler 建立新課程（管理員專屬）
// @Summary     Create a new course
// @Description 建立課程，tags 會修剪、轉小寫並去重
// @Tags        courses
// @Accept      json
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "需要管理員權限"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /courses [post]
func CreateCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		tags, err := service.NormalizeTags(req.Tags)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		course := &model.Course{
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
		}
		if _, err := repository.CreateCourse(c.Request().Context(), db, course); err != nil {
			return dto.DomainError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
