package routes

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
)

func registerAuth(api fiber.Router, d Deps, protect fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", d.Auth.Register)
	auth.Post("/login",
		middleware.LogActivity(models.ActionLogin, "user", d.Logs, d.Log),
		d.Auth.Login)
	auth.Get("/logout", protect,
		middleware.LogActivity(models.ActionLogout, "user", d.Logs, d.Log),
		d.Auth.Logout)
	auth.Get("/me", protect, d.Auth.Me)
	auth.Put("/password", protect, d.Auth.UpdatePassword)
	auth.Post("/forgot-password", d.Auth.ForgotPassword)
	auth.Put("/reset-password/:token", d.Auth.ResetPassword)
}
