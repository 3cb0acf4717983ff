package routes

import (
	"github.com/gofiber/fiber/v2"
)

func registerQuickAccess(api fiber.Router, d Deps, protect fiber.Handler) {
	quick := api.Group("/quick-access", protect)

	quick.Get("/", d.QuickAccess.List)
	quick.Get("/gallery", d.QuickAccess.Gallery)
	quick.Post("/", d.QuickAccess.Create)
	quick.Post("/order", d.QuickAccess.Reorder)
	quick.Put("/:id", d.QuickAccess.Update)
	quick.Delete("/:id", d.QuickAccess.Delete)
}
