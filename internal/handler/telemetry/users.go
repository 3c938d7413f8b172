// File: internal/handler/telemetry/users.go
package telemetry

import (
	"net/http"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 過濾與分頁使用者列表（管理員專屬），所有條件為精確比對
// @Summary     List users
// @Tags        telemetry
// @Produce     json
// @Param       name query string false "姓名（精確比對）"
// @Param       surname query string false "姓氏（精確比對）"
// @Param       email query string false "Email（精確比對）"
// @Param       is_suspended query boolean false "停權狀態"
// @Param       page query int false "頁碼（預設 1）"
// @Param       page_size query int false "每頁筆數（預設 20，最多 100）"
// @Success     200 {object} dto.UserPageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "需要管理員權限"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /telemetry/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q dto.ListUsersQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid query parameters"})
		}
		if err := c.Validate(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if q.Page == 0 {
			q.Page = 1
		}
		if q.PageSize == 0 {
			q.PageSize = 20
		}

		page, err := service.ListUsers(c.Request().Context(), db, service.UserFilter{
			Name:        q.Name,
			Surname:     q.Surname,
			Email:       q.Email,
			IsSuspended: q.IsSuspended,
		}, q.Page, q.PageSize)
		if err != nil {
			return dto.DomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewUserPageResponse(page))
	}
}

// SuspendHandler 設定帳號停權狀態（管理員專屬），管理員帳號不可被停權
// @Summary     Suspend or unsuspend a user
// @Tags        telemetry
// @Accept      json
// @Param       request body dto.SuspendRequest true "目標使用者與狀態"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "不可停權管理員"
// @Failure     404 {object} dto.APIError "查無使用者"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /telemetry/suspend [post]
func SuspendHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SuspendRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		if err := service.SetSuspension(c.Request().Context(), db, req.ID, req.Status); err != nil {
			return dto.DomainError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
