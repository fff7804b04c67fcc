package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

type ApplicationRepository interface {
	Upsert(app *models.Application) error
	ListRecent(limit int) ([]models.Application, error)
	DeleteAll() error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Upsert implements ApplicationRepository. Confirming the same job twice for
// the same user updates the status in place instead of creating a duplicate.
func (r *applicationRepository) Upsert(app *models.Application) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(app).Error

	if err != nil {
		return fmt.Errorf("failed to upsert application: %w", err)
	}

	return nil
}

// ListRecent implements ApplicationRepository.
func (r *applicationRepository) ListRecent(limit int) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Order("applied_at DESC").
		Limit(limit).
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// DeleteAll implements ApplicationRepository.
func (r *applicationRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.Application{}).Error; err != nil {
		return fmt.Errorf("failed to delete applications: %w", err)
	}
	return nil
}
