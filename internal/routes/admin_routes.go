package routes

import (
	"github.com/gofiber/fiber/v2"
)

func registerAdmin(api fiber.Router, d Deps, protect, adminOnly fiber.Handler) {
	admin := api.Group("/admin", protect, adminOnly)

	admin.Get("/dashboard", d.Admin.Dashboard)
	admin.Get("/logs", d.Admin.Logs)
	admin.Get("/settings", d.Admin.Settings)
	admin.Put("/settings", d.Admin.UpdateSettings)
}
