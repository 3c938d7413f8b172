// File: internal/handler/telemetry/session.go
package telemetry

import (
	"log"
	"net/http"

	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/dto"
	"coursehub/internal/geo"
	"coursehub/internal/service"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	// Origin 已由 CORS 設定把關，socket 本身驗令牌
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SessionHandler 前端連線遙測的 WebSocket 入口
// 令牌以查詢參數傳遞；連線斷開時記錄一筆含地理位置的 session
// @Summary     Telemetry session socket
// @Description 保持連線直到前端離開；斷線時寫入 session 紀錄
// @Tags        telemetry
// @Param       token query string true "存取令牌"
// @Router      /telemetry/ws [get]
func SessionHandler(cfg *config.Config, db database.DB, geoClient *geo.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := service.UserByToken(c.Request().Context(), db, cfg, c.QueryParam("token"))
		if err != nil {
			return dto.DomainError(c, err)
		}

		clientIP := c.Request().Header.Get("CF-Connecting-IP")
		if clientIP == "" {
			clientIP = c.RealIP()
		}

		country, err := geoClient.Country(c.Request().Context(), clientIP)
		if err != nil {
			log.Printf("查詢 %s 地理位置失敗: %v", clientIP, err)
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "geolocation unavailable"})
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		defer conn.Close()

		start := timeNow()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		err = service.RecordSession(c.Request().Context(), db, start, timeNow(), clientIP, country, user.ID)
		if err != nil {
			log.Printf("寫入 session 紀錄失敗: %v", err)
		}
		return nil
	}
}
