package handlers

import (
	"finguard/internal/models"
	"finguard/internal/repositories"
	"finguard/internal/services/fraud"
	"finguard/internal/utils/response"
	"finguard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type FraudHandler struct {
	service     fraud.Service
	assessments repositories.AssessmentRepository
}

func NewFraudHandler(service fraud.Service, assessments repositories.AssessmentRepository) *FraudHandler {
	return &FraudHandler{service: service, assessments: assessments}
}

// DetectFraud runs the NLI and spam passes over the document.
func (h *FraudHandler) DetectFraud(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	documentText := validation.OptionalString(payload, "document_text")
	if documentText == "" {
		return response.MissingField(c, "document_text")
	}

	result := h.service.Detect(c.UserContext(), documentText)
	recordAssessment(c, h.assessments, models.AssessmentFraud, "", 0, false, "")

	return response.JSON(c, result)
}

// DetectFraudAdvanced composes the anomaly, spam and NLI analyses over
// tabular features and free text.
func (h *FraudHandler) DetectFraudAdvanced(c *fiber.Ctx) error {
	var input struct {
		Tabular map[string]interface{} `json:"tabular"`
		Text    map[string]interface{} `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Tabular == nil {
		input.Tabular = map[string]interface{}{}
	}
	if input.Text == nil {
		input.Text = map[string]interface{}{}
	}

	result := h.service.DetectAdvanced(c.UserContext(), input.Tabular, input.Text)

	score := 0.0
	if result.AnomalyScore != nil {
		score = *result.AnomalyScore
	}
	recordAssessment(c, h.assessments, models.AssessmentFraudAdvanced,
		"", score, false, result.RiskNarrative)

	return response.JSON(c, result)
}

// DetectFraudFinchain classifies financial text for fraud signals.
func (h *FraudHandler) DetectFraudFinchain(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	documentText := validation.OptionalString(payload, "document_text")
	if documentText == "" {
		return response.MissingField(c, "document_text")
	}

	result := h.service.DetectFinchain(c.UserContext(), documentText)
	recordAssessment(c, h.assessments, models.AssessmentFraud,
		result.FraudLabel, result.FraudProbability, false, "")

	return response.JSON(c, result)
}
