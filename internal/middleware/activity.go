package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/internal/models"
	"intranet-backend/internal/repositories"
)

// LogActivity records an audit entry after the handler succeeds with a
// 2xx status. Recording failures are logged and never affect the
// response.
func LogActivity(action, entityType string, logs repositories.ActivityLogRepository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			return nil
		}

		uid, ok := c.Locals("user_id").(bson.ObjectID)
		if !ok {
			return nil
		}

		entry := models.ActivityLog{
			User:      uid,
			Action:    action,
			Entity:    models.EntityRef{Type: entityType},
			Details:   c.Method() + " " + c.OriginalURL(),
			IP:        c.IP(),
			UserAgent: c.Get("User-Agent"),
			CreatedAt: time.Now(),
		}
		if raw := c.Params("id"); raw != "" {
			if id, err := bson.ObjectIDFromHex(raw); err == nil {
				entry.Entity.ID = id
			}
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := logs.Insert(ctx, entry); err != nil {
				log.Warn("activity log insert failed",
					zap.String("action", action),
					zap.String("entity", entityType),
					zap.Error(err))
			}
		}()
		return nil
	}
}
