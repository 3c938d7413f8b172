// File: internal/handler/telemetry/stats.go
package telemetry

import (
	"net/http"
	"time"

	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫的全域函式
var timeNow = time.Now

// StatsHandler 整體數值遙測（管理員專屬）
// @Summary     Numerical telemetry
// @Description 使用者總數、近 30 天活躍使用者數與課程總數
// @Tags        telemetry
// @Produce     json
// @Success     200 {object} dto.StatsResponse
// @Failure     403 {object} dto.APIError "需要管理員權限"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /telemetry/stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := service.NumericalTelemetry(c.Request().Context(), db)
		if err != nil {
			return dto.DomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto.StatsResponse{
			TotalUsers:   stats.TotalUsers,
			ActiveUsers:  stats.ActiveUsers,
			TotalCourses: stats.TotalCourses,
		})
	}
}

// ActivityHandler 活躍使用者分佈（管理員專屬）
// @Summary     Active users distribution
// @Description 逐小時與逐國家的活躍使用者數
// @Tags        telemetry
// @Produce     json
// @Param       since_days query int false "統計天數（預設 7，最多 90）"
// @Success     200 {object} dto.ActivityResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.APIError "需要管理員權限"
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /telemetry/activity [get]
func ActivityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q dto.ActivityQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid query parameters"})
		}
		if err := c.Validate(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if q.SinceDays == 0 {
			q.SinceDays = 7
		}

		report, err := service.ActivityDistribution(c.Request().Context(), db, q.SinceDays)
		if err != nil {
			return dto.DomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto.ActivityResponse{
			Distribution: report.Distribution,
			Countries:    report.Countries,
		})
	}
}
