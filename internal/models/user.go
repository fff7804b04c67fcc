package models

import (
	"time"

	"github.com/google/uuid"
)

// User holds the single test identity and its resume text. The deployment
// assumes one user, so ResumeVersion acts as the logical resume generation:
// it is bumped on every re-upload and the ranked-jobs cache is invalidated
// alongside it.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email         string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"type:text" json:"-"`
	ResumeText    string    `gorm:"type:text" json:"-"`
	ResumeVersion int       `gorm:"default:0" json:"resume_version"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
