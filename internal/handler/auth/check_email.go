// File: internal/handler/auth/check_email.go
package auth

import (
	"net/http"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// CheckEmailHandler 檢查 email 是否已註冊（註冊表單的即時提示用）
// @Summary     Check existing email
// @Description 回傳 email 是否已被註冊
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.CheckEmailRequest true "要檢查的 email"
// @Success     200 {object} dto.CheckEmailResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/checkEmail [post]
func CheckEmailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CheckEmailRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		exists, err := service.EmailExists(c.Request().Context(), db, req.Email)
		if err != nil {
			return dto.DomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto.CheckEmailResponse{Exists: exists})
	}
}
