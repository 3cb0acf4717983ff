package routes

import (
	"github.com/gofiber/fiber/v2"
)

func registerNotifications(api fiber.Router, d Deps, protect fiber.Handler) {
	notifications := api.Group("/notifications", protect)

	notifications.Get("/", d.Notification.List)
	notifications.Put("/read-all", d.Notification.MarkAllRead)
	notifications.Get("/:id", d.Notification.Get)
	notifications.Put("/:id/read", d.Notification.MarkRead)
	notifications.Delete("/:id", d.Notification.Delete)
}
