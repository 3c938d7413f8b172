// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳存取令牌
// @Summary     登入使用者
// @Description 驗證帳密並回傳令牌與使用者資訊；未驗證信箱的帳號無法登入
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.APIError "帳號或密碼錯誤"
// @Failure     403 {object} dto.APIError "信箱尚未驗證"
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(cfg *config.Config, db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		token, user, err := service.Login(c.Request().Context(), db, cfg, req.Email, req.Password)
		if err != nil {
			return dto.DomainError(c, err)
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			Token: token,
			User:  dto.NewUserInfo(user),
		})
	}
}
