package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/internal/mocks"
	"intranet-backend/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, id bson.ObjectID) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   id.Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedApp(users *mocks.UserRepositoryMock) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", Protect(testSecret, users, zap.NewNop()), func(c *fiber.Ctx) error {
		id := c.Locals("user_id").(bson.ObjectID)
		return c.SendString(id.Hex())
	})
	return app
}

func TestProtectRejectsMissingToken(t *testing.T) {
	app := protectedApp(new(mocks.UserRepositoryMock))

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProtectRejectsForgedToken(t *testing.T) {
	app := protectedApp(new(mocks.UserRepositoryMock))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", bson.NewObjectID()))

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProtectAcceptsBearerToken(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	id := bson.NewObjectID()
	users.On("FindByID", mock.Anything, id).
		Return(models.User{ID: id, Name: "Jordan Blake", IsActive: true}, nil).Once()
	users.On("TouchLastActive", mock.Anything, id).Return(nil).Maybe()

	app := protectedApp(users)
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, id))

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestProtectAcceptsCookieToken(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	id := bson.NewObjectID()
	users.On("FindByID", mock.Anything, id).
		Return(models.User{ID: id, Name: "Jordan Blake", IsActive: true}, nil).Once()
	users.On("TouchLastActive", mock.Anything, id).Return(nil).Maybe()

	app := protectedApp(users)
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, testSecret, id)})

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestProtectRejectsDeactivatedUser(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	id := bson.NewObjectID()
	users.On("FindByID", mock.Anything, id).
		Return(models.User{ID: id, IsActive: false}, nil).Once()

	app := protectedApp(users)
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, id))

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRequireRoles(t *testing.T) {
	app := fiber.New()
	app.Get("/admin",
		func(c *fiber.Ctx) error {
			c.Locals("user", models.User{Role: models.RoleUser})
			return c.Next()
		},
		RequireRoles(models.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}
