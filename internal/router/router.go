// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"coursehub/internal/cache"
	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/geo"
	"coursehub/internal/handler"
	"coursehub/internal/handler/auth"
	"coursehub/internal/handler/courses"
	"coursehub/internal/handler/insights"
	"coursehub/internal/handler/telemetry"
	"coursehub/internal/mail"
	"coursehub/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, cfg *config.Config, db database.DB, rdb cache.Cache, mailer *mail.Mailer) {
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin()},
		AllowCredentials: true,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PATCH, echo.PUT, echo.DELETE, echo.OPTIONS},
	}))

	geoClient := geo.NewClient(rdb)
	authLimit := middleware.RateLimit(middleware.AuthLimit)

	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth(cfg, db))

	// 認證與帳號
	api.POST("/auth/register", auth.RegisterHandler(cfg, db, mailer), authLimit)
	api.POST("/auth/login", auth.LoginHandler(cfg, db), authLimit)
	api.POST("/auth/checkEmail", auth.CheckEmailHandler(db))
	api.GET("/auth/me", auth.MeHandler(), middleware.RequireAuth(cfg, db))
	api.POST("/auth/verify", auth.VerifyHandler(cfg, db))
	api.GET("/auth/verify", auth.VerifyRedirectHandler(cfg, db))
	api.POST("/auth/resend", auth.ResendHandler(cfg, mailer), authLimit)

	// 課程：讀取允許匿名（只見已發佈），寫入為管理員專屬
	apiCourses := api.Group("/courses")
	apiCourses.GET("", courses.ListCoursesHandler(db), middleware.OptionalAuth(cfg, db))
	apiCourses.GET("/:id", courses.GetCourseHandler(db), middleware.OptionalAuth(cfg, db))
	apiCourses.POST("", courses.CreateCourseHandler(db), middleware.RequireAdmin(cfg, db))
	apiCourses.PATCH("/:id", courses.PatchCourseHandler(db), middleware.RequireAdmin(cfg, db))
	apiCourses.DELETE("/:id", courses.DeleteCourseHandler(db), middleware.RequireAdmin(cfg, db))

	// 新聞洞察（需登入）
	apiInsights := api.Group("/insights", middleware.RequireAuth(cfg, db))
	apiInsights.GET("/en", insights.NewsHandler(db, "EN"))
	apiInsights.GET("/ua", insights.NewsHandler(db, "UA"))

	// 遙測：socket 以查詢參數驗令牌，其餘為管理員專屬
	api.GET("/telemetry/ws", telemetry.SessionHandler(cfg, db, geoClient))
	apiTelemetry := api.Group("/telemetry", middleware.RequireAdmin(cfg, db))
	apiTelemetry.GET("/stats", telemetry.StatsHandler(db))
	apiTelemetry.GET("/activity", telemetry.ActivityHandler(db))
	apiTelemetry.GET("/users", telemetry.ListUsersHandler(db))
	apiTelemetry.POST("/suspend", telemetry.SuspendHandler(db))
}
