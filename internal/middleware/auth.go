package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/internal/models"
	"intranet-backend/internal/repositories"
)

type authClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// resolveUser verifies the token from a bearer header or the token
// cookie and loads the matching active user.
func resolveUser(c *fiber.Ctx, secret string, users repositories.UserRepository) (bson.ObjectID, models.User, error) {
	tokenStr := ""
	if auth := c.Get("Authorization"); strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		tokenStr = strings.TrimSpace(auth[7:])
	}
	if tokenStr == "" {
		tokenStr = c.Cookies("token")
	}
	if tokenStr == "" {
		return bson.NilObjectID, models.User{}, fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	var claims authClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return bson.NilObjectID, models.User{}, fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	id, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, models.User{}, fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	user, err := users.FindByID(c.Context(), id)
	if err != nil {
		return bson.NilObjectID, models.User{}, fiber.NewError(fiber.StatusUnauthorized, "User no longer exists")
	}
	if !user.IsActive {
		return bson.NilObjectID, models.User{}, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	return id, user, nil
}

// Protect authenticates the request from a bearer header or the token
// cookie, loads the user, and stores both id and document on Locals.
// It also refreshes last_active as a best-effort side write.
func Protect(secret string, users repositories.UserRepository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, user, err := resolveUser(c, secret, users)
		if err != nil {
			return err
		}

		c.Locals("user_id", id)
		c.Locals("user", user)

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := users.TouchLastActive(ctx, id); err != nil {
				log.Debug("last_active refresh failed", zap.Error(err))
			}
		}()

		return c.Next()
	}
}

// Identify resolves the caller like Protect on routes that are also
// open to anonymous visitors. A missing or invalid token leaves the
// Locals unset and the request continues as anonymous.
func Identify(secret string, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, user, err := resolveUser(c, secret, users); err == nil {
			c.Locals("user_id", id)
			c.Locals("user", user)
		}
		return c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not listed.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "User role "+user.Role+" is not authorized to access this route")
	}
}
