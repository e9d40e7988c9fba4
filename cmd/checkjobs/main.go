// Prints recent cron job runs and submissions stuck without
// evaluation. Useful for checking the background monitors from a
// shell without digging through logs.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/database"
	"github.com/sahilchouksey/internship-simulator/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	printJobLogs(db)
	printStaleSubmissions(db)
}

func printJobLogs(db *gorm.DB) {
	var logs []model.CronJobLog
	err := db.Order("started_at DESC").Limit(20).Find(&logs).Error
	if err != nil {
		log.Fatal("Failed to query job logs:", err)
	}

	fmt.Println("=== Recent cron job runs ===")
	if len(logs) == 0 {
		fmt.Println("(none)")
		return
	}

	for _, l := range logs {
		finished := "-"
		if l.FinishedAt != nil {
			finished = l.FinishedAt.Format(time.RFC3339)
		}
		fmt.Printf("%-28s %-8s started=%s finished=%s %s\n",
			l.JobName, l.Status, l.StartedAt.Format(time.RFC3339), finished, l.Message)
	}
}

func printStaleSubmissions(db *gorm.DB) {
	cutoff := time.Now().Add(-2 * time.Hour)

	var stale []model.Submission
	err := db.Where("score IS NULL AND submitted_at < ?", cutoff).
		Order("submitted_at ASC").
		Limit(50).
		Find(&stale).Error
	if err != nil {
		log.Fatal("Failed to query submissions:", err)
	}

	fmt.Println("\n=== Submissions awaiting evaluation (>2h) ===")
	if len(stale) == 0 {
		fmt.Println("(none)")
		return
	}

	for _, s := range stale {
		fmt.Printf("submission=%d task=%d user=%d submitted=%s\n",
			s.ID, s.TaskID, s.UserID, s.SubmittedAt.Format(time.RFC3339))
	}
}
