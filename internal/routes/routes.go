// Package routes mounts every HTTP surface of the backend onto the
// Fiber app.
package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"intranet-backend/config"
	"intranet-backend/dto"
	"intranet-backend/internal/handlers"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
	"intranet-backend/internal/repositories"
	"intranet-backend/internal/ws"
)

// Deps carries every constructed dependency the route tree needs.
type Deps struct {
	Cfg config.Config
	Log *zap.Logger
	Hub *ws.Hub

	Users        repositories.UserRepository
	Logs         repositories.ActivityLogRepository
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Post         *handlers.PostHandler
	Group        *handlers.GroupHandler
	Chat         *handlers.ChatHandler
	Event        *handlers.EventHandler
	News         *handlers.NewsHandler
	File         *handlers.FileHandler
	Notification *handlers.NotificationHandler
	Department   *handlers.DepartmentHandler
	Admin        *handlers.AdminHandler
	QuickAccess  *handlers.QuickAccessHandler
}

// Register wires all endpoints, shared middleware and operational
// surfaces (docs, metrics, health).
func Register(app *fiber.App, d Deps) {
	protect := middleware.Protect(d.Cfg.JWTSecret, d.Users, d.Log)
	identify := middleware.Identify(d.Cfg.JWTSecret, d.Users)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/api/healthz", func(c *fiber.Ctx) error {
		return c.JSON(dto.OKMessage("ok", nil))
	})
	app.Static("/uploads", d.Cfg.UploadDir)

	app.Use("/ws", ws.Upgrade())
	app.Get("/ws", protect, ws.Endpoint(d.Hub))

	api := app.Group("/api")
	registerAuth(api, d, protect)
	registerUsers(api, d, protect, adminOnly)
	registerPosts(api, d, protect, identify)
	registerGroups(api, d, protect, identify)
	registerChats(api, d, protect)
	registerEvents(api, d, protect)
	registerNews(api, d, protect, adminOnly)
	registerFiles(api, d, protect)
	registerNotifications(api, d, protect)
	registerDepartments(api, d, protect, adminOnly)
	registerAdmin(api, d, protect, adminOnly)
	registerQuickAccess(api, d, protect)
}
