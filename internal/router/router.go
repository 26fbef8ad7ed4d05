// Package router wires handlers, middleware and route groups together.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/handler"
	"github.com/fincommittee/platform/internal/middleware"
	"github.com/fincommittee/platform/internal/model"
)

// Handlers carries every handler the API mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Members      *handler.MemberHandler
	Sponsors     *handler.SponsorHandler
	Events       *handler.EventHandler
	Sponsorships *handler.SponsorshipHandler
	Analytics    *handler.AnalyticsHandler
	Reports      *handler.ReportHandler
	Settings     *handler.SettingsHandler
}

// Register mounts all routes. Everything except the health check and the
// auth endpoints lives under /api behind JWT auth; committee endpoints
// accept both roles while member administration and settings are
// admin-only. Analytics reads sit behind the Redis response cache.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/api/auth")
	auth.Use(middleware.NewTokenBucket(rlCfg, rdb))
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/refresh-access", h.Auth.RefreshAccess)
	auth.POST("/logout", h.Auth.Logout)

	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	api.Use(middleware.NewTokenBucket(rlCfg, rdb))
	api.Use(middleware.RequireRole(model.RoleAdmin, model.RoleFinance))

	api.GET("/profile", h.Auth.Me)
	api.PUT("/profile", h.Auth.UpdateMe)

	api.GET("/sponsors", h.Sponsors.List)
	api.POST("/sponsors", h.Sponsors.Create)
	api.GET("/sponsors/:id", h.Sponsors.Get)
	api.PUT("/sponsors/:id", h.Sponsors.Update)
	api.DELETE("/sponsors/:id", h.Sponsors.Delete)

	api.GET("/events", h.Events.List)
	api.POST("/events", h.Events.Create)
	api.GET("/events/:id", h.Events.Get)
	api.PUT("/events/:id", h.Events.Update)
	api.DELETE("/events/:id", h.Events.Delete)

	api.GET("/sponsorships", h.Sponsorships.List)
	api.POST("/sponsorships", h.Sponsorships.Create)
	api.GET("/sponsorships/stats", h.Sponsorships.Stats)
	api.GET("/sponsorships/by-sponsor/:id", h.Sponsorships.BySponsor)
	api.GET("/sponsorships/by-event/:id", h.Sponsorships.ByEvent)
	api.GET("/sponsorships/:id", h.Sponsorships.Get)
	api.PUT("/sponsorships/:id", h.Sponsorships.Update)
	api.DELETE("/sponsorships/:id", h.Sponsorships.Delete)

	analytics := api.Group("/analytics")
	analytics.Use(middleware.NewRedisCache(cacheCfg, rdb))
	analytics.GET("/overview", h.Analytics.Overview)
	analytics.GET("/trends", h.Analytics.Trends)
	analytics.GET("/roi", h.Analytics.ROI)
	analytics.GET("/reports", h.Analytics.Reports)
	analytics.GET("/dashboard", h.Analytics.Dashboard)

	reports := api.Group("/reports")
	reports.GET("/sponsors", h.Reports.Sponsors)
	reports.GET("/events", h.Reports.Events)
	reports.GET("/financial-summary", h.Reports.FinancialSummary)
	reports.GET("/monthly", h.Reports.Monthly)
	reports.GET("/roi-analysis", h.Reports.ROIAnalysis)
	reports.POST("/export", h.Reports.Export)

	admin := api.Group("", middleware.RequireRole(model.RoleAdmin))
	admin.GET("/auth/users", h.Members.List)
	admin.PUT("/auth/users/:id/role", h.Members.UpdateRole)
	admin.PUT("/auth/users/:id/toggle-status", h.Members.ToggleActive)
	admin.DELETE("/auth/users/:id", h.Members.Delete)
	admin.GET("/settings", h.Settings.List)
	admin.PUT("/settings", h.Settings.Update)
	admin.POST("/settings/reset", h.Settings.Reset)
	admin.GET("/settings/backup", h.Settings.Backup)
	admin.POST("/settings/restore", h.Settings.Restore)
	admin.GET("/settings/system-info", h.Settings.SystemInfo)
}
