// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"coursehub/internal/dto"
	"coursehub/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 Bearer 令牌取得當前使用者的即時快照
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.UserInfo
// @Failure     401 {object} dto.APIError "令牌無效或過期"
// @Failure     404 {object} dto.APIError "帳號已不存在"
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}
		return c.JSON(http.StatusOK, dto.NewUserInfo(user))
	}
}
