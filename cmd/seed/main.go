// Seeds reference data: the admin user, industries and companies.
// Safe to run repeatedly; existing rows are left alone.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedAll(); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	fmt.Println("Seeding completed successfully")
}
