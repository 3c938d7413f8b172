// File: internal/middleware/middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"coursehub/internal/apperr"
	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/model"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireAuth 解析 Bearer 令牌並查詢當下的使用者快照存入 context
// 令牌問題回應 401，帳號已不存在回應 404
func RequireAuth(cfg *config.Config, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := service.UserByToken(c.Request().Context(), db, cfg, token)
			if err != nil {
				var ae *apperr.Error
				if errors.As(err, &ae) {
					return c.JSON(ae.Status, dto.APIError{Detail: ae.Message})
				}
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "unexpected error"})
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// OptionalAuth 與 RequireAuth 相同，但缺少令牌或任何解析/查詢失敗
// 一律視為匿名呼叫者，不回傳錯誤
func OptionalAuth(cfg *config.Config, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return next(c)
			}
			user, err := service.UserByToken(c.Request().Context(), db, cfg, token)
			if err != nil {
				return next(c)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上要求 admin 角色，否則回應 403
func RequireAdmin(cfg *config.Config, db database.DB) echo.MiddlewareFunc {
	auth := RequireAuth(cfg, db)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			if err := service.RequireAdmin(user); err != nil {
				return dto.DomainError(c, err)
			}
			return next(c)
		})
	}
}

// CurrentUser 取出 RequireAuth/OptionalAuth 存入的使用者，匿名時回傳 nil
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
