package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerFiles(api fiber.Router, d Deps, protect fiber.Handler) {
	files := api.Group("/files", protect)

	files.Get("/", d.File.List)
	files.Get("/shared", d.File.ListShared)
	files.Post("/",
		middleware.LogActivity(models.ActionUpload, "file", d.Logs, d.Log),
		d.File.Upload)
	files.Get("/:id", d.File.Get)
	files.Delete("/:id",
		middleware.LogActivity(models.ActionDelete, "file", d.Logs, d.Log),
		d.File.Delete)

	files.Post("/:id/share",
		middleware.LogActivity(models.ActionShare, "file", d.Logs, d.Log),
		d.File.Share)
	files.Delete("/:id/share/:userId", d.File.Unshare)
}
