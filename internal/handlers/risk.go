package handlers

import (
	"finguard/internal/models"
	"finguard/internal/repositories"
	"finguard/internal/services/risk"
	"finguard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type RiskHandler struct {
	service     risk.Service
	assessments repositories.AssessmentRepository
}

func NewRiskHandler(service risk.Service, assessments repositories.AssessmentRepository) *RiskHandler {
	return &RiskHandler{service: service, assessments: assessments}
}

// AnalyzeLoanRisk scores an applicant with the simple ratio scorer.
func (h *RiskHandler) AnalyzeLoanRisk(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result := h.service.AnalyzeBasic(payload)
	recordAssessment(c, h.assessments, models.AssessmentLoanRisk,
		result.RiskLevel, result.RiskScore, false, result.Explanation)

	return response.JSON(c, result)
}

// ScoreLoanRiskHeuristic scores an applicant with the deterministic
// rule-based scorer.
func (h *RiskHandler) ScoreLoanRiskHeuristic(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result := h.service.ScoreHeuristic(payload)
	recordAssessment(c, h.assessments, models.AssessmentLoanRisk,
		result.RiskLevel, result.RiskScore, result.UsedFallback, result.Explanation)

	return response.JSON(c, result)
}

// ScoreLoanRiskML scores an applicant with the hosted tabular model,
// degrading to the rule-based scorer on inference errors.
func (h *RiskHandler) ScoreLoanRiskML(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, summary := h.service.ScoreTabular(c.UserContext(), payload)
	recordAssessment(c, h.assessments, models.AssessmentLoanRisk,
		summary.Level, summary.Score, summary.UsedFallback, "")

	return response.JSON(c, result)
}

// ScoreLoanRiskHF scores an applicant with the hosted credit-card risk
// model, degrading to the rule-based scorer on inference errors.
func (h *RiskHandler) ScoreLoanRiskHF(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, summary := h.service.ScoreCreditModel(c.UserContext(), payload)
	recordAssessment(c, h.assessments, models.AssessmentLoanRisk,
		summary.Level, summary.Score, summary.UsedFallback, "")

	return response.JSON(c, result)
}
