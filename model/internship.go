package model

import (
	"time"
)

// Internship track statuses. The only transition performed by the API
// is active -> completed; abandoned is a terminal alternative kept for
// data compatibility.
const (
	TrackStatusActive    = "active"
	TrackStatusCompleted = "completed"
	TrackStatusAbandoned = "abandoned"
)

// InternshipTrack is a user's instance of an internship in a given
// industry (and optionally company).
type InternshipTrack struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	IndustryID    uint       `gorm:"not null;index" json:"industry_id"`
	CompanyID     *uint      `gorm:"index" json:"company_id,omitempty"`
	Title         string     `gorm:"size:100;not null" json:"title"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	DurationWeeks int        `gorm:"default:4" json:"duration_weeks"`
	Status        string     `gorm:"size:20;default:'active'" json:"status"`
	Progress      float64    `gorm:"default:0" json:"progress"` // 0-100
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Industry    Industry     `gorm:"foreignKey:IndustryID" json:"-"`
	Company     *Company     `gorm:"foreignKey:CompanyID" json:"-"`
	Tasks       []Task       `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Certificate *Certificate `gorm:"foreignKey:InternshipID" json:"-"`
}
