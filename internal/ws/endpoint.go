package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Upgrade gates the endpoint to real websocket upgrade requests.
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Endpoint keeps the connection open until the client goes away.
// Incoming frames are drained and discarded.
func Endpoint(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		user, ok := conn.Locals("user_id").(bson.ObjectID)
		if !ok {
			conn.Close()
			return
		}

		hub.Register(user, conn)
		defer hub.Unregister(user, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
