package handlers

import (
	"finguard/internal/models"
	"finguard/internal/repositories"
	"finguard/internal/services/compliance"
	"finguard/internal/utils/response"
	"finguard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ComplianceHandler struct {
	service     compliance.Service
	assessments repositories.AssessmentRepository
}

func NewComplianceHandler(service compliance.Service, assessments repositories.AssessmentRepository) *ComplianceHandler {
	return &ComplianceHandler{service: service, assessments: assessments}
}

// AnalyzeCompliance runs the clause-level compliance analysis over the
// submitted document.
func (h *ComplianceHandler) AnalyzeCompliance(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	documentText := validation.OptionalString(payload, "document_text")
	if documentText == "" {
		return response.MissingField(c, "document_text")
	}

	report := h.service.Analyze(c.UserContext(), documentText)

	score := 0.0
	if total := len(report.Clauses); total > 0 {
		score = float64(report.NonCompliantClauses) / float64(total)
	}
	recordAssessment(c, h.assessments, models.AssessmentCompliance,
		report.OverallCompliance, score, false, report.Summary)

	return response.JSON(c, report)
}
