package handlers

import (
	"finguard/internal/services/dashboard"
	"finguard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service dashboard.Service
}

func NewDashboardHandler(service dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetSummary returns the dashboard summary payload.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return response.JSON(c, h.service.GetSummary(c.UserContext()))
}
