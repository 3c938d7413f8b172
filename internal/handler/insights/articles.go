// File: internal/handler/insights/articles.go
package insights

import (
	"net/http"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/repository"

	"github.com/labstack/echo/v4"
)

// NewsHandler 回傳指定語言的新聞文章
// @Summary     List news insights
// @Description 語言由路由決定（/insights/en、/insights/ua）
// @Tags        insights
// @Produce     json
// @Success     200 {array} dto.NewsItem
// @Failure     401 {object} dto.APIError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /insights/{lang} [get]
func NewsHandler(db database.DB, lang string) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := repository.ListArticlesByLang(c.Request().Context(), db, lang)
		if err != nil {
			return dto.DomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewNewsItems(articles))
	}
}
