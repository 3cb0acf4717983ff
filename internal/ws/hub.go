// Package ws wires the realtime transport layer. Connections are
// tracked per user; event emission is left to future work, so the hub
// only registers, unregisters and logs.
package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/internal/observability"
)

type Hub struct {
	clients map[bson.ObjectID]map[*websocket.Conn]bool
	mu      sync.RWMutex
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[bson.ObjectID]map[*websocket.Conn]bool),
		log:     log,
	}
}

// Register tracks a new connection for the user.
func (h *Hub) Register(user bson.ObjectID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[user]; !ok {
		h.clients[user] = make(map[*websocket.Conn]bool)
	}
	h.clients[user][conn] = true

	observability.IncWSActive()
	h.log.Info("websocket connected", zap.String("user", user.Hex()))
}

// Unregister drops a connection, removing the user entry when it was
// the last one.
func (h *Hub) Unregister(user bson.ObjectID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[user]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, user)
		}
	}

	observability.DecWSActive()
	h.log.Info("websocket disconnected", zap.String("user", user.Hex()))
}

// Connected reports whether the user has at least one open connection.
func (h *Hub) Connected(user bson.ObjectID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[user]) > 0
}
