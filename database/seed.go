package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/utils/auth"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions. Seeding is idempotent: each seed
// skips when its table already has rows.
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedIndustries(); err != nil {
		return fmt.Errorf("failed to seed industries: %w", err)
	}

	if err := s.SeedCompanies(); err != nil {
		return fmt.Errorf("failed to seed companies: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping...")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: passwordHash,
		IsAdmin:      true,
		Profile:      &model.UserProfile{FullName: "System Administrator", ProfileCompleted: true},
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin user: %s\n", admin.Email)
	return nil
}

// SeedIndustries creates the default industry reference data.
func (s *Seeder) SeedIndustries() error {
	var count int64
	if err := s.db.Model(&model.Industry{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Industries already exist, skipping...")
		return nil
	}

	industries := []model.Industry{
		{
			Name:        "Technology & IT",
			Description: "Experience the fast-paced world of technology, developing software, managing IT infrastructure, or designing digital solutions.",
			Icon:        "bi-cpu",
		},
		{
			Name:        "Business & Finance",
			Description: "Dive into the world of business strategy, financial analysis, marketing, and corporate operations.",
			Icon:        "bi-cash-coin",
		},
		{
			Name:        "Healthcare",
			Description: "Explore careers in health services, medical research, healthcare administration, or public health.",
			Icon:        "bi-hospital",
		},
		{
			Name:        "Education",
			Description: "Discover roles in teaching, curriculum development, educational technology, or academic administration.",
			Icon:        "bi-book",
		},
		{
			Name:        "Environmental Science & Sustainability",
			Description: "Work on projects related to environmental conservation, renewable energy, sustainability consulting, or climate research.",
			Icon:        "bi-tree",
		},
		{
			Name:        "Media & Communications",
			Description: "Develop skills in journalism, digital media production, public relations, or content creation.",
			Icon:        "bi-camera",
		},
		{
			Name:        "Law & Government",
			Description: "Experience legal research, policy analysis, public administration, or compliance work.",
			Icon:        "bi-bank",
		},
		{
			Name:        "Arts & Design",
			Description: "Explore creative roles in graphic design, user experience, product design, or multimedia production.",
			Icon:        "bi-palette",
		},
		{
			Name:        "Engineering",
			Description: "Work on projects in mechanical, civil, electrical, or other engineering disciplines.",
			Icon:        "bi-gear",
		},
		{
			Name:        "Hospitality & Tourism",
			Description: "Experience roles in hotel management, tourism development, event planning, or customer service.",
			Icon:        "bi-airplane",
		},
	}

	if err := s.db.Create(&industries).Error; err != nil {
		return err
	}

	log.Printf("Added %d industries\n", len(industries))
	return nil
}

// SeedCompanies creates the default virtual companies, one per
// industry.
func (s *Seeder) SeedCompanies() error {
	var count int64
	if err := s.db.Model(&model.Company{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Companies already exist, skipping...")
		return nil
	}

	// Map industry names to their IDs
	var industries []model.Industry
	if err := s.db.Find(&industries).Error; err != nil {
		return err
	}
	industryMap := make(map[string]uint, len(industries))
	for _, ind := range industries {
		industryMap[ind.Name] = ind.ID
	}

	type seedCompany struct {
		name        string
		industry    string
		description string
	}

	defaults := []seedCompany{
		{"TechNova Solutions", "Technology & IT", "A leading technology firm specializing in cloud solutions, AI development, and enterprise software."},
		{"Global Finance Partners", "Business & Finance", "A multinational financial services company offering investment banking, asset management, and financial advisory."},
		{"MediCare Innovations", "Healthcare", "A healthcare technology company developing digital health solutions and medical devices."},
		{"EduTech Pioneers", "Education", "An educational technology company creating learning platforms and digital curriculum."},
		{"GreenEarth Sustainability", "Environmental Science & Sustainability", "A consulting firm focused on sustainability strategies, environmental impact assessments, and renewable energy."},
		{"MediaSphere Global", "Media & Communications", "A digital media company producing content across multiple platforms and offering marketing services."},
		{"LegalEdge Associates", "Law & Government", "A law firm specializing in corporate law, intellectual property, and regulatory compliance."},
		{"Creative Design Studio", "Arts & Design", "A design agency working on brand identity, user experience, and product design for various clients."},
		{"Innovate Engineering", "Engineering", "An engineering firm that designs and implements infrastructure, products, and systems across various industries."},
		{"Horizon Hospitality Group", "Hospitality & Tourism", "A hospitality management company operating hotels, resorts, and tourism experiences worldwide."},
	}

	added := 0
	for _, c := range defaults {
		industryID, ok := industryMap[c.industry]
		if !ok {
			continue
		}
		meta, _ := json.Marshal(model.CompanyMetadata{Location: "Remote"})
		company := model.Company{
			Name:        c.name,
			IndustryID:  industryID,
			Description: c.description,
			Metadata:    datatypes.JSON(meta),
		}
		if err := s.db.Create(&company).Error; err != nil {
			return err
		}
		added++
	}

	log.Printf("Added %d companies\n", added)
	return nil
}
