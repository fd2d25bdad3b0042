package handlers

import (
	"finguard/internal/repositories"
	"finguard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const assessmentListLimit = 50

type AssessmentHandler struct {
	assessments repositories.AssessmentRepository
}

func NewAssessmentHandler(assessments repositories.AssessmentRepository) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// ListMine returns the caller's recent assessments.
func (h *AssessmentHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	assessments, err := h.assessments.ListByUser(userID, assessmentListLimit)
	if err != nil {
		return response.ServerError(c, "Failed to list assessments")
	}
	return response.JSON(c, fiber.Map{"assessments": assessments})
}

// ListAll returns recent assessments across all users. Admin only.
func (h *AssessmentHandler) ListAll(c *fiber.Ctx) error {
	assessments, err := h.assessments.ListRecent(assessmentListLimit)
	if err != nil {
		return response.ServerError(c, "Failed to list assessments")
	}
	return response.JSON(c, fiber.Map{"assessments": assessments})
}
