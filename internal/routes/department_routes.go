package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerDepartments(api fiber.Router, d Deps, protect, adminOnly fiber.Handler) {
	departments := api.Group("/departments", protect)

	departments.Get("/", d.Department.List)
	departments.Post("/", adminOnly,
		middleware.LogActivity(models.ActionCreate, "department", d.Logs, d.Log),
		d.Department.Create)
	departments.Get("/:id", d.Department.Get)
	departments.Put("/:id", adminOnly,
		middleware.LogActivity(models.ActionUpdate, "department", d.Logs, d.Log),
		d.Department.Update)
	departments.Delete("/:id", adminOnly,
		middleware.LogActivity(models.ActionDelete, "department", d.Logs, d.Log),
		d.Department.Delete)

	departments.Get("/:id/users", d.Department.ListUsers)
	departments.Get("/:id/posts", d.Department.ListPosts)
}
