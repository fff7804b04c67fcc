package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

type UserRepository interface {
	FindByEmail(email string) (*models.User, error)
	UpsertResume(email, password, resumeText string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail implements UserRepository.
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// UpsertResume implements UserRepository. The resume is a full replace and
// bumps the resume version so callers can tell a re-upload happened.
func (r *userRepository) UpsertResume(email, password, resumeText string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:            uuid.New(),
			Email:         email,
			Password:      password,
			ResumeText:    resumeText,
			ResumeVersion: 1,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := r.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	result := r.db.Model(&user).Updates(map[string]interface{}{
		"resume_text":    resumeText,
		"resume_version": user.ResumeVersion + 1,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update resume: %w", result.Error)
	}

	user.ResumeText = resumeText
	user.ResumeVersion++
	return &user, nil
}
