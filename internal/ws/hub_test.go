package ws

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

func TestHubTracksConnectionsPerUser(t *testing.T) {
	hub := NewHub(zap.NewNop())
	user := bson.NewObjectID()
	first := &websocket.Conn{}
	second := &websocket.Conn{}

	require.False(t, hub.Connected(user))

	hub.Register(user, first)
	hub.Register(user, second)
	require.True(t, hub.Connected(user))

	hub.Unregister(user, first)
	require.True(t, hub.Connected(user))

	hub.Unregister(user, second)
	require.False(t, hub.Connected(user))
}

func TestHubUnregisterUnknownConnection(t *testing.T) {
	hub := NewHub(zap.NewNop())
	user := bson.NewObjectID()

	hub.Unregister(user, &websocket.Conn{})
	require.False(t, hub.Connected(user))
}
