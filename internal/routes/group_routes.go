package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerGroups(api fiber.Router, d Deps, protect, identify fiber.Handler) {
	groups := api.Group("/groups")

	// Group discovery is public. Anonymous visitors see only public
	// groups; a resolved token lets members read private ones.
	groups.Get("/", identify, d.Group.List)
	groups.Get("/my", protect, d.Group.ListMine)
	groups.Get("/:id", identify, d.Group.Get)

	groups.Use(protect)

	groups.Post("/",
		middleware.LogActivity(models.ActionCreate, "group", d.Logs, d.Log),
		d.Group.Create)
	groups.Put("/:id",
		middleware.LogActivity(models.ActionUpdate, "group", d.Logs, d.Log),
		d.Group.Update)
	groups.Delete("/:id",
		middleware.LogActivity(models.ActionDelete, "group", d.Logs, d.Log),
		d.Group.Delete)

	groups.Post("/:id/join", d.Group.Join)
	groups.Post("/:id/leave", d.Group.Leave)

	groups.Get("/:id/members", d.Group.ListMembers)
	groups.Post("/:id/members", d.Group.AddMember)
	groups.Put("/:id/members/:memberId", d.Group.UpdateMember)
	groups.Delete("/:id/members/:memberId", d.Group.RemoveMember)

	groups.Get("/:id/posts", d.Group.ListPosts)
	groups.Get("/:id/files", d.Group.ListFiles)
	groups.Get("/:id/events", d.Group.ListEvents)
}
