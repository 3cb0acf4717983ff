package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerPosts(api fiber.Router, d Deps, protect, identify fiber.Handler) {
	posts := api.Group("/posts")

	// The feed and single posts are readable without a session. A
	// token, when present, still resolves so isLiked reflects it.
	posts.Get("/", identify, d.Post.List)
	posts.Get("/:id", identify, d.Post.Get)

	posts.Use(protect)

	posts.Post("/",
		middleware.LogActivity(models.ActionCreate, "post", d.Logs, d.Log),
		d.Post.Create)
	posts.Get("/user/:userId", d.Post.ListByUser)
	posts.Get("/department/:departmentId", d.Post.ListByDepartment)
	posts.Get("/group/:groupId", d.Post.ListByGroup)
	posts.Put("/:id",
		middleware.LogActivity(models.ActionUpdate, "post", d.Logs, d.Log),
		d.Post.Update)
	posts.Delete("/:id",
		middleware.LogActivity(models.ActionDelete, "post", d.Logs, d.Log),
		d.Post.Delete)

	posts.Post("/:id/like", d.Post.Like)
	posts.Delete("/:id/like", d.Post.Unlike)

	posts.Get("/:id/comments", d.Post.ListComments)
	posts.Post("/:id/comments",
		middleware.LogActivity(models.ActionCreate, "comment", d.Logs, d.Log),
		d.Post.CreateComment)
	posts.Put("/:id/comments/:commentId",
		middleware.LogActivity(models.ActionUpdate, "comment", d.Logs, d.Log),
		d.Post.UpdateComment)
	posts.Delete("/:id/comments/:commentId",
		middleware.LogActivity(models.ActionDelete, "comment", d.Logs, d.Log),
		d.Post.DeleteComment)
	posts.Post("/:id/comments/:commentId/like", d.Post.LikeComment)
	posts.Delete("/:id/comments/:commentId/like", d.Post.UnlikeComment)
}
