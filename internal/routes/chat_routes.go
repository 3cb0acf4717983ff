package routes

import (
	"github.com/gofiber/fiber/v2"
)

func registerChats(api fiber.Router, d Deps, protect fiber.Handler) {
	chats := api.Group("/chats", protect)

	chats.Get("/", d.Chat.List)
	chats.Post("/", d.Chat.Create)
	chats.Get("/:id", d.Chat.Get)
	chats.Put("/:id", d.Chat.Update)
	chats.Delete("/:id", d.Chat.Delete)

	chats.Get("/:id/messages", d.Chat.ListMessages)
	chats.Post("/:id/messages", d.Chat.SendMessage)
	chats.Put("/:id/messages/:messageId", d.Chat.EditMessage)
	chats.Delete("/:id/messages/:messageId", d.Chat.DeleteMessage)
	chats.Post("/:id/read", d.Chat.MarkRead)
}
