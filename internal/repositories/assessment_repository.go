package repositories

import (
	"finguard/internal/models"

	"gorm.io/gorm"
)

// AssessmentRepository records and lists scoring audit rows.
type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	ListByUser(userID uint, limit int) ([]models.Assessment, error)
	ListRecent(limit int) ([]models.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *models.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) ListByUser(userID uint, limit int) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) ListRecent(limit int) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&assessments).Error
	return assessments, err
}
