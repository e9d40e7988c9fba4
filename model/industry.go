package model

import (
	"time"

	"gorm.io/datatypes"
)

// Industry is static reference data seeded at startup.
type Industry struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Icon        string `gorm:"size:100" json:"icon"`

	// Relationships
	Tracks    []InternshipTrack `gorm:"foreignKey:IndustryID" json:"-"`
	Companies []Company         `gorm:"foreignKey:IndustryID" json:"-"`
}

// Company is a virtual employer within an industry, seeded at startup.
type Company struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	IndustryID  uint           `gorm:"not null;index" json:"industry_id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"` // logo, website, location
	CreatedAt   time.Time      `json:"created_at"`

	// Relationships
	Industry    Industry          `gorm:"foreignKey:IndustryID" json:"-"`
	Internships []InternshipTrack `gorm:"foreignKey:CompanyID" json:"-"`
}

// CompanyMetadata is the shape stored in Company.Metadata.
type CompanyMetadata struct {
	Logo     string `json:"logo,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}
