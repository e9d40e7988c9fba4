package model

import (
	"time"

	"gorm.io/datatypes"
)

// Task statuses. A task advances pending -> submitted on submission and
// submitted -> evaluated once its submission is scored.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusSubmitted  = "submitted"
	TaskStatusEvaluated  = "evaluated"
)

// Task difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Task is a weekly internship assignment. Tasks are created in batches
// of 1-3 per week when an internship starts.
type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	InternshipID uint       `gorm:"not null;index" json:"internship_id"`
	Title        string     `gorm:"size:100;not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Instructions string     `gorm:"type:text;not null" json:"instructions"`
	Difficulty   string     `gorm:"size:20;default:'medium'" json:"difficulty"`
	Points       int        `gorm:"default:100" json:"points"`
	Status       string     `gorm:"size:20;default:'pending'" json:"status"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	Internship  InternshipTrack `gorm:"foreignKey:InternshipID" json:"-"`
	Submissions []Submission    `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"submissions,omitempty"`
}

// Submission is a piece of work handed in for a task. Multiple
// submissions per task are allowed; the most recent one is
// authoritative for display. Score/feedback/evaluated_at are written
// once by the evaluator.
type Submission struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TaskID      uint           `gorm:"not null;index" json:"task_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	FileURLs    datatypes.JSON `json:"file_urls,omitempty"` // JSON array of attachment URLs
	Score       *float64       `json:"score,omitempty"`     // 0-100, nil until evaluated
	Feedback    *string        `json:"feedback,omitempty"`
	SubmittedAt time.Time      `json:"submitted_at"`
	EvaluatedAt *time.Time     `json:"evaluated_at,omitempty"`

	// Relationships
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
