package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assessment kinds, one per scoring surface.
const (
	AssessmentCompliance    = "compliance"
	AssessmentLoanRisk      = "loan_risk"
	AssessmentFraud         = "fraud"
	AssessmentFraudAdvanced = "fraud_advanced"
)

// Assessment is the audit trail of a single scoring request.
// Rows are written best-effort after each analysis; a failed insert
// never fails the originating request.
type Assessment struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index"`
	Kind         string    `json:"kind" gorm:"index;not null"`
	RiskLevel    string    `json:"risk_level"`
	RiskScore    float64   `json:"risk_score"`
	UsedFallback bool      `json:"used_fallback"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
