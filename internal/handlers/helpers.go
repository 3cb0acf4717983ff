package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

var validate = validator.New()

// uidFrom reads the authenticated user id placed on Locals by the auth
// middleware.
func uidFrom(c *fiber.Ctx) bson.ObjectID {
	if id, ok := c.Locals("user_id").(bson.ObjectID); ok {
		return id
	}
	return bson.NilObjectID
}

// userFrom reads the authenticated user document from Locals.
func userFrom(c *fiber.Ctx) models.User {
	if u, ok := c.Locals("user").(models.User); ok {
		return u
	}
	return models.User{}
}

// paramID parses the named route parameter as an ObjectID.
func paramID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "Invalid id format")
	}
	return id, nil
}

// parseBody decodes and validates a JSON request body.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			field := verrs[0]
			return fiber.NewError(fiber.StatusBadRequest, "Validation failed on field '"+field.Field()+"' ("+field.Tag()+")")
		}
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed")
	}
	return nil
}

// parsePage reads page/limit from the query string with sane bounds.
func parsePage(c *fiber.Ctx) dto.PageQuery {
	return parsePageLimit(c, 10)
}

// parsePageLimit is parsePage with a caller-chosen default window size.
func parsePageLimit(c *fiber.Ctx, def int) dto.PageQuery {
	page := int64(c.QueryInt("page", 1))
	if page < 1 {
		page = 1
	}
	limit := int64(c.QueryInt("limit", def))
	if limit < 1 {
		limit = int64(def)
	}
	if limit > 100 {
		limit = 100
	}
	return dto.PageQuery{Page: page, Limit: limit}
}
