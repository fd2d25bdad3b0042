package handlers

import (
	"log"

	"finguard/internal/models"
	"finguard/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// recordAssessment writes an audit row for a scoring request.
// Inserts are best-effort: a failure is logged and never surfaces to
// the caller.
func recordAssessment(c *fiber.Ctx, repo repositories.AssessmentRepository, kind, level string, score float64, usedFallback bool, detail string) {
	if repo == nil {
		return
	}

	userID, _ := c.Locals("userID").(uint)
	assessment := &models.Assessment{
		UserID:       userID,
		Kind:         kind,
		RiskLevel:    level,
		RiskScore:    score,
		UsedFallback: usedFallback,
		Detail:       detail,
	}
	if err := repo.Create(assessment); err != nil {
		log.Printf("failed to record %s assessment: %v", kind, err)
	}
}
