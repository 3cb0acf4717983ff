package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

// newTestApp builds a fiber app with the production error handler and a
// stub auth middleware that injects the given user into Locals.
func newTestApp(user models.User) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: NewErrorHandler(false, zap.NewNop()),
		BodyLimit:    25 << 20,
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", user.ID)
		c.Locals("user", user)
		return c.Next()
	})
	return app
}

func testUser() models.User {
	return models.User{
		ID:    bson.NewObjectID(),
		Name:  "Jordan Blake",
		Email: "jordan.blake@city.gov",
		Role:  models.RoleUser,
	}
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, res *http.Response) dto.Response {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var envelope dto.Response
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}
