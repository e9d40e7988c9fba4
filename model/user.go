package model

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`

	// Relationships
	Profile      *UserProfile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Internships  []InternshipTrack `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Submissions  []Submission      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Certificates []Certificate     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserProfile holds the intern-facing profile for a user. Exactly one
// profile exists per user; it is created empty at registration and
// profile_completed flips to true on the first full update.
type UserProfile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName         string    `gorm:"size:100" json:"full_name"`
	Major            string    `gorm:"size:100" json:"major"`
	University       string    `gorm:"size:100" json:"university"`
	CareerInterests  string    `gorm:"size:200" json:"career_interests"`
	GraduationYear   int       `json:"graduation_year"`
	Bio              string    `gorm:"type:text" json:"bio"`
	ProfileCompleted bool      `gorm:"default:false" json:"profile_completed"`
	UpdatedAt        time.Time `json:"updated_at"`
}
