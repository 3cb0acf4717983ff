package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"intranet-backend/dto"
	"intranet-backend/internal/repositories"
)

// NewErrorHandler builds the app-wide error translator. Repository and
// framework errors are mapped onto the response envelope; unrecognized
// errors become a generic 500 with the underlying message attached
// outside production.
func NewErrorHandler(production bool, log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Server Error"

		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		case repositories.IsNotFound(err):
			code = fiber.StatusNotFound
			message = "Resource not found"
		case repositories.IsDuplicate(err):
			code = fiber.StatusBadRequest
			message = "Duplicate field value entered"
		}

		resp := dto.Response{Success: false, Error: message}
		if code == fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.OriginalURL()),
				zap.Error(err))
			if !production {
				resp.Stack = fmt.Sprintf("%+v", err)
			}
		}
		return c.Status(code).JSON(resp)
	}
}
