package model

import (
	"time"
)

// Certificate records the completion of an internship. The unique
// index on internship_id guarantees at most one certificate per
// track even under concurrent completion requests.
type Certificate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	InternshipID   uint      `gorm:"uniqueIndex;not null" json:"internship_id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Title          string    `gorm:"size:100;not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Score          float64   `gorm:"not null" json:"score"`
	SkillsAcquired string    `gorm:"type:text;not null" json:"skills_acquired"`
	CertificateURL string    `gorm:"size:200" json:"certificate_url,omitempty"`
	IssuedAt       time.Time `json:"issued_at"`

	// Relationships
	Internship InternshipTrack `gorm:"foreignKey:InternshipID" json:"-"`
	User       User            `gorm:"foreignKey:UserID" json:"-"`
}
