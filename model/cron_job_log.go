package model

import (
	"time"
)

// CronJobLog records each scheduled job run for monitoring.
type CronJobLog struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	JobName    string     `gorm:"size:100;not null;index" json:"job_name"`
	Status     string     `gorm:"size:20;default:'running'" json:"status"` // running, success, failed
	Message    string     `gorm:"type:text" json:"message,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
