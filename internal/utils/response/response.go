// Package response standardizes the JSON envelopes the API returns.
// Errors always serialize as {"error": "<message>"}.
package response

import (
	"github.com/gofiber/fiber/v2"
)

func JSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// MissingField reports a 400 naming the absent payload field.
func MissingField(c *fiber.Ctx, field string) error {
	return Error(c, fiber.StatusBadRequest, "Missing "+field)
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}
