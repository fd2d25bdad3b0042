package handlers

import (
	"finguard/internal/services/report"
	"finguard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service report.Service
}

func NewReportHandler(service report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// GenerateReport builds a regulatory report from the request
// parameters, filling absent fields with demo defaults.
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	var req report.Request
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return response.JSON(c, h.service.Generate(req))
}

// SubmitRBI simulates submitting the latest report to the regulator.
func (h *ReportHandler) SubmitRBI(c *fiber.Ctx) error {
	return response.JSON(c, h.service.SubmitRBI())
}
