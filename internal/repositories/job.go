package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

type JobRepository interface {
	ListRecent(limit int) ([]models.Job, error)
	InsertSkipDuplicates(jobs []models.Job) (int64, error)
	DeleteAll() error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// ListRecent implements JobRepository.
func (r *jobRepository) ListRecent(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Order("posted_at DESC").
		Limit(limit).
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}

	return jobs, nil
}

// InsertSkipDuplicates implements JobRepository. Jobs whose external ID is
// already present are dropped, not overwritten. Returns the number of rows
// actually inserted.
func (r *jobRepository) InsertSkipDuplicates(jobs []models.Job) (int64, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoNothing: true,
	}).Create(&jobs)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert jobs: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteAll implements JobRepository.
func (r *jobRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.Job{}).Error; err != nil {
		return fmt.Errorf("failed to delete jobs: %w", err)
	}
	return nil
}
