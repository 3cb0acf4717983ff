package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerUsers(api fiber.Router, d Deps, protect, adminOnly fiber.Handler) {
	users := api.Group("/users", protect)

	users.Get("/profile", d.User.Profile)
	users.Put("/profile",
		middleware.LogActivity(models.ActionUpdate, "user", d.Logs, d.Log),
		d.User.UpdateProfile)
	users.Put("/password", d.Auth.UpdatePassword)
	users.Get("/notifications/settings", d.User.NotificationSettings)
	users.Put("/notifications/settings", d.User.UpdateNotificationSettings)

	users.Get("/", adminOnly, d.User.List)
	users.Post("/", adminOnly,
		middleware.LogActivity(models.ActionCreate, "user", d.Logs, d.Log),
		d.User.Create)
	users.Get("/:id", adminOnly, d.User.Get)
	users.Put("/:id", adminOnly,
		middleware.LogActivity(models.ActionUpdate, "user", d.Logs, d.Log),
		d.User.Update)
	users.Delete("/:id", adminOnly,
		middleware.LogActivity(models.ActionDelete, "user", d.Logs, d.Log),
		d.User.Delete)
}
