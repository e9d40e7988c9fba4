package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/database"
	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/services/supervisor"
	"github.com/sahilchouksey/internship-simulator/utils/auth"
)

// End-to-end lifecycle against a real database: start an internship,
// submit work, record the evaluation, complete, and check the
// certificate. Content generation runs in fallback mode so the test
// needs no model credentials.
//
// Requires a running Postgres configured via the usual DB_* variables.
func TestInternshipLifecycle(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	store, err := database.StartGORM()
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		t.Fatal("failed to get GORM DB instance")
	}

	if err := database.NewSeeder(db).SeedIndustries(); err != nil {
		t.Fatalf("failed to seed industries: %v", err)
	}

	sup := supervisor.New(nil, nil)
	service := NewInternshipService(db, sup, nil)
	ctx := context.Background()

	user := createLifecycleUser(t, db)

	var industry model.Industry
	if err := db.First(&industry).Error; err != nil {
		t.Fatalf("no industries seeded: %v", err)
	}

	// Start
	track, err := service.StartInternship(ctx, user, industry.ID, nil)
	if err != nil {
		t.Fatalf("start internship: %v", err)
	}
	if track.Status != model.TrackStatusActive {
		t.Errorf("track status %q", track.Status)
	}
	if len(track.Tasks) != 3 {
		t.Errorf("expected 3 week-1 tasks, got %d", len(track.Tasks))
	}

	// Submit the first task
	task := track.Tasks[0]
	submission, err := service.SubmitTask(ctx, user.ID, task.ID, "my research findings", nil)
	if err != nil {
		t.Fatalf("submit task: %v", err)
	}

	// Evaluate without supplied score/feedback; the fallback generator
	// fills both.
	evaluated, err := service.EvaluateSubmission(ctx, submission.ID, nil, nil)
	if err != nil {
		t.Fatalf("evaluate submission: %v", err)
	}
	if evaluated.Score == nil || evaluated.Feedback == nil {
		t.Fatal("expected generated score and feedback")
	}

	// A repeated callback must not overwrite the recorded result.
	override := 10.0
	if _, err := service.EvaluateSubmission(ctx, submission.ID, &override, nil); err != ErrTaskAlreadyEvaluated {
		t.Errorf("expected ErrTaskAlreadyEvaluated, got %v", err)
	}
	var persisted model.Submission
	if err := db.First(&persisted, submission.ID).Error; err != nil {
		t.Fatalf("reload submission: %v", err)
	}
	if persisted.Score == nil || *persisted.Score != *evaluated.Score {
		t.Errorf("score changed after repeated evaluation: %v", persisted.Score)
	}

	// Complete
	cert, issued, err := service.CompleteInternship(ctx, user, track.ID)
	if err != nil {
		t.Fatalf("complete internship: %v", err)
	}
	if !issued {
		t.Error("first completion should issue a new certificate")
	}
	if cert.Score != *evaluated.Score {
		t.Errorf("certificate score %v, want %v", cert.Score, *evaluated.Score)
	}

	// Completing again returns the same certificate without issuing.
	again, issued, err := service.CompleteInternship(ctx, user, track.ID)
	if err != nil {
		t.Fatalf("repeat completion: %v", err)
	}
	if issued {
		t.Error("repeat completion should not issue a new certificate")
	}
	if again.ID != cert.ID {
		t.Errorf("expected certificate %d again, got %d", cert.ID, again.ID)
	}

	// Cross-user access is rejected.
	other := createLifecycleUser(t, db)
	if _, err := service.GetInternship(other.ID, track.ID); err != ErrNotOwner {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}

	// A user without a completed profile cannot start.
	bare := createLifecycleUser(t, db)
	bare.Profile.ProfileCompleted = false
	if err := db.Save(bare.Profile).Error; err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if _, err := service.StartInternship(ctx, bare, industry.ID, nil); err != ErrProfileIncomplete {
		t.Errorf("expected ErrProfileIncomplete, got %v", err)
	}
}

func createLifecycleUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	hash, err := auth.HashPassword("testpassword1")
	if err != nil {
		t.Fatal(err)
	}

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	user := model.User{
		Username:     "lifecycle_" + suffix,
		Email:        "lifecycle_" + suffix + "@example.com",
		PasswordHash: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	profile := model.UserProfile{
		UserID:           user.ID,
		FullName:         "Lifecycle Tester",
		Major:            "Computer Science",
		CareerInterests:  "testing",
		ProfileCompleted: true,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}

	user.Profile = &profile
	t.Cleanup(func() {
		db.Delete(&model.User{}, user.ID)
	})
	return &user
}
