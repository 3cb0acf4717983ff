package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerNews(api fiber.Router, d Deps, protect, adminOnly fiber.Handler) {
	news := api.Group("/news", protect)

	news.Get("/", d.News.List)
	news.Get("/categories", d.News.Categories)
	news.Get("/featured", d.News.Featured)
	news.Post("/", adminOnly,
		middleware.LogActivity(models.ActionCreate, "news", d.Logs, d.Log),
		d.News.Create)
	news.Get("/:id", d.News.Get)
	news.Put("/:id",
		middleware.LogActivity(models.ActionUpdate, "news", d.Logs, d.Log),
		d.News.Update)
	news.Delete("/:id",
		middleware.LogActivity(models.ActionDelete, "news", d.Logs, d.Log),
		d.News.Delete)
}
