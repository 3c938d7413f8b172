// File: internal/handler/auth/resend.go
package auth

import (
	"log"
	"net/http"

	"coursehub/internal/config"
	"coursehub/internal/dto"
	"coursehub/internal/mail"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// ResendHandler 重寄驗證信
// @Summary     Resend verification letter
// @Description 排程重寄驗證信並一律回應 204，不揭露寄送結果
// @Tags        auth
// @Accept      json
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Router      /auth/resend [post]
func ResendHandler(cfg *config.Config, mailer *mail.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ResendRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		token, err := service.IssueAccessToken(cfg, req.Email, cfg.AccessTokenTTL())
		if err != nil {
			log.Printf("簽發 %s 的驗證令牌失敗: %v", req.Email, err)
		} else {
			mailer.SendVerificationResend(req.Email, verificationLink(cfg, token))
		}
		return c.NoContent(http.StatusNoContent)
	}
}
