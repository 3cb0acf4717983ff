package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerEvents(api fiber.Router, d Deps, protect fiber.Handler) {
	events := api.Group("/events", protect)

	events.Get("/", d.Event.List)
	events.Get("/calendar", d.Event.Calendar)
	events.Post("/",
		middleware.LogActivity(models.ActionCreate, "event", d.Logs, d.Log),
		d.Event.Create)
	events.Get("/:id", d.Event.Get)
	events.Put("/:id",
		middleware.LogActivity(models.ActionUpdate, "event", d.Logs, d.Log),
		d.Event.Update)
	events.Delete("/:id",
		middleware.LogActivity(models.ActionDelete, "event", d.Logs, d.Log),
		d.Event.Delete)

	events.Post("/:id/attend", d.Event.Attend)
	events.Delete("/:id/attend", d.Event.Unattend)
}
