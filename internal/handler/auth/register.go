// File: internal/handler/auth/register.go
package auth

import (
	"fmt"
	"log"
	"net/http"

	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/mail"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// verificationLink 組出信件中的 GET 驗證連結
func verificationLink(cfg *config.Config, token string) string {
	return fmt.Sprintf("%s/api/auth/verify?token=%s", cfg.BackendURL, token)
}

// RegisterHandler 註冊新使用者並觸發驗證信寄送
// @Summary     Register a new user
// @Description 建立新帳號；提供正確的管理員密碼可賦予 admin 角色。成功後於背景寄送驗證信。
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.RegisterRequest true "註冊資料"
// @Success     200 {object} dto.UserInfo
// @Failure     400 {object} dto.APIError "Email 已被使用"
// @Failure     403 {object} dto.APIError "管理員密碼錯誤"
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(cfg *config.Config, db database.DB, mailer *mail.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := service.Register(c.Request().Context(), db, cfg, service.Registration{
			Name:          req.Name,
			Surname:       req.Surname,
			Email:         req.Email,
			Password:      req.Password,
			AdminPassword: req.AdminPassword,
		})
		if err != nil {
			return dto.DomainError(c, err)
		}

		// 驗證信寄送為背景任務，失敗不影響註冊結果
		token, err := service.IssueAccessToken(cfg, user.Email, cfg.AccessTokenTTL())
		if err != nil {
			log.Printf("簽發 %s 的驗證令牌失敗: %v", user.Email, err)
		} else {
			mailer.SendVerification(user.Email, verificationLink(cfg, token))
		}

		return c.JSON(http.StatusOK, dto.NewUserInfo(user))
	}
}
