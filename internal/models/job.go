package models

import (
	"time"

	"github.com/google/uuid"
)

type EmploymentType string

const (
	TypeFullTime   EmploymentType = "Full-time"
	TypePartTime   EmploymentType = "Part-time"
	TypeContract   EmploymentType = "Contract"
	TypeInternship EmploymentType = "Internship"
)

type Job struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExternalID  string         `gorm:"type:text;uniqueIndex;not null" json:"external_id"`
	Title       string         `gorm:"type:text" json:"title"`
	Company     string         `gorm:"type:text" json:"company"`
	Location    string         `gorm:"type:text" json:"location"`
	Description string         `gorm:"type:text" json:"description"`
	Type        EmploymentType `gorm:"type:text;default:'Full-time'" json:"type"`
	Salary      string         `gorm:"type:text" json:"salary"`
	JobURL      string         `gorm:"type:text" json:"job_url"`
	PostedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"posted_at"`
	CreatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// RankedJob is a Job merged with its match score for the current resume.
// The ranked list is ephemeral: it lives in the cache blob and is rebuilt
// from scratch on every scoring pass.
type RankedJob struct {
	Job
	MatchScore  int    `json:"match_score"`
	MatchReason string `json:"match_reason"`
}
