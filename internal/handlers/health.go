package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck reports service liveness.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ping is the minimal reachability probe used by the frontend.
func Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "pong"})
}
