package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_job" json:"user_id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_job" json:"job_id"`
	JobTitle  string    `gorm:"type:text" json:"job_title"`
	Company   string    `gorm:"type:text" json:"company"`
	Status    string    `gorm:"type:text;default:'Applied'" json:"status"`
	AppliedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"applied_at"`
}

func (Application) TableName() string {
	return "applications"
}
