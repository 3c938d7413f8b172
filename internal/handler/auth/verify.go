// File: internal/handler/auth/verify.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"coursehub/internal/apperr"
	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// VerifyHandler 以 JSON 主體中的令牌完成信箱驗證
// @Summary     Verify email
// @Description 依驗證令牌將帳號標記為已驗證；重複驗證無害
// @Tags        auth
// @Accept      json
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.APIError "令牌無效或過期"
// @Failure     404 {object} dto.APIError "帳號已不存在"
// @Router      /auth/verify [post]
func VerifyHandler(cfg *config.Config, db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.VerifyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		if err := service.VerifyEmail(c.Request().Context(), db, cfg, req.Token); err != nil {
			return dto.DomainError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// VerifyRedirectHandler 信件內 GET 連結的驗證入口
// 無論結果為何都轉導回前端，結果以查詢參數表達
// @Summary     Verify email (link)
// @Description 信件中的驗證連結；成功轉導至前端並附上 verified=1，失敗附上失敗原因
// @Tags        auth
// @Param       token query string true "驗證令牌"
// @Success     302
// @Router      /auth/verify [get]
func VerifyRedirectHandler(cfg *config.Config, db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")

		err := service.VerifyEmail(c.Request().Context(), db, cfg, token)
		if err == nil {
			return c.Redirect(http.StatusFound, fmt.Sprintf("%s?verified=1", cfg.FrontendURL))
		}

		reason := "invalid"
		switch {
		case errors.Is(err, apperr.ErrExpiredToken):
			reason = "expired"
		case errors.Is(err, apperr.ErrNonExistentUser):
			reason = "unknown_user"
		}
		return c.Redirect(http.StatusFound, fmt.Sprintf("%s?verified=0&reason=%s", cfg.FrontendURL, reason))
	}
}
