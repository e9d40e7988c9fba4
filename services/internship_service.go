package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/services/evaluator"
	"github.com/sahilchouksey/internship-simulator/services/supervisor"
)

// Sentinel errors the handlers map onto HTTP status codes.
var (
	ErrProfileIncomplete    = errors.New("profile must be completed before starting an internship")
	ErrIndustryNotFound     = errors.New("industry not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrInternshipNotFound   = errors.New("internship not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrNotOwner             = errors.New("resource belongs to another user")
	ErrInternshipCompleted  = errors.New("internship is already completed")
	ErrTaskAlreadyEvaluated = errors.New("task has already been evaluated")
)

const taskDeadline = 7 * 24 * time.Hour

// InternshipService drives the internship lifecycle: starting tracks,
// accepting submissions, recording evaluations, and issuing
// certificates.
type InternshipService struct {
	db         *gorm.DB
	supervisor *supervisor.Supervisor
	evaluator  *evaluator.Client
}

// NewInternshipService creates the lifecycle service. The evaluator
// client may be nil, which disables evaluation dispatch.
func NewInternshipService(db *gorm.DB, sup *supervisor.Supervisor, eval *evaluator.Client) *InternshipService {
	return &InternshipService{
		db:         db,
		supervisor: sup,
		evaluator:  eval,
	}
}

// profileContext builds the generation context from a user's profile.
func profileContext(user *model.User) supervisor.GenerationContext {
	ctx := supervisor.GenerationContext{FullName: user.Username}
	if user.Profile != nil {
		if user.Profile.FullName != "" {
			ctx.FullName = user.Profile.FullName
		}
		ctx.Major = user.Profile.Major
		ctx.University = user.Profile.University
		ctx.CareerInterests = user.Profile.CareerInterests
	}
	return ctx
}

// StartInternship creates a new internship track for the user along
// with its first week of tasks. Content generation never fails; the
// only error paths are precondition failures and database errors.
func (s *InternshipService) StartInternship(ctx context.Context, user *model.User, industryID uint, companyID *uint) (*model.InternshipTrack, error) {
	if user.Profile == nil || !user.Profile.ProfileCompleted {
		return nil, ErrProfileIncomplete
	}

	var industry model.Industry
	if err := s.db.First(&industry, industryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, fmt.Errorf("failed to fetch industry: %w", err)
	}

	var companyName string
	if companyID != nil {
		var company model.Company
		if err := s.db.Where("id = ? AND industry_id = ?", *companyID, industryID).First(&company).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, fmt.Errorf("failed to fetch company: %w", err)
		}
		companyName = company.Name
	}

	internCtx := profileContext(user)
	plan := s.supervisor.GenerateInternship(ctx, industry.Name, internCtx)
	taskPlans := s.supervisor.GenerateTasks(ctx, industry.Name, companyName, internCtx, 1, "")

	track := model.InternshipTrack{
		UserID:        user.ID,
		IndustryID:    industryID,
		CompanyID:     companyID,
		Title:         plan.Title,
		Description:   plan.Description,
		DurationWeeks: plan.DurationWeeks,
		Status:        model.TrackStatusActive,
		Progress:      0,
		StartedAt:     time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&track).Error; err != nil {
			return fmt.Errorf("failed to create internship: %w", err)
		}

		deadline := time.Now().Add(taskDeadline)
		for _, tp := range taskPlans {
			task := model.Task{
				InternshipID: track.ID,
				Title:        tp.Title,
				Description:  tp.Description,
				Instructions: tp.Instructions,
				Difficulty:   tp.Difficulty,
				Points:       tp.Points,
				Status:       model.TaskStatusPending,
				Deadline:     &deadline,
			}
			if err := tx.Create(&task).Error; err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}
			track.Tasks = append(track.Tasks, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	track.Industry = industry
	return &track, nil
}

// ListInternships returns all of the user's internship tracks, newest
// first, optionally filtered by status.
func (s *InternshipService) ListInternships(userID uint, status string) ([]model.InternshipTrack, error) {
	query := s.db.Preload("Industry").Preload("Company").
		Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tracks []model.InternshipTrack
	err := query.Order("started_at DESC").Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}
	return tracks, nil
}

// GetInternship returns one track with its tasks and certificate. A
// track owned by another user yields ErrNotOwner.
func (s *InternshipService) GetInternship(userID, internshipID uint) (*model.InternshipTrack, error) {
	var track model.InternshipTrack
	err := s.db.Preload("Industry").Preload("Company").Preload("Certificate").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id ASC")
		}).
		First(&track, internshipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to fetch internship: %w", err)
	}
	if track.UserID != userID {
		return nil, ErrNotOwner
	}
	return &track, nil
}

// GetTask returns a task with its submissions after checking the task
// belongs to the calling user's internship.
func (s *InternshipService) GetTask(userID, taskID uint) (*model.Task, error) {
	var task model.Task
	err := s.db.Preload("Internship").
		Preload("Submissions", func(db *gorm.DB) *gorm.DB {
			return db.Order("submissions.submitted_at DESC")
		}).
		First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	if task.Internship.UserID != userID {
		return nil, ErrNotOwner
	}
	return &task, nil
}

// SubmitTask records a submission for a task and dispatches it for
// asynchronous evaluation. Dispatch failures are logged, never
// surfaced; the submission then simply stays un-evaluated.
func (s *InternshipService) SubmitTask(ctx context.Context, userID, taskID uint, content string, fileURLs []string) (*model.Submission, error) {
	task, err := s.GetTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	var urls datatypes.JSON
	if len(fileURLs) > 0 {
		raw, err := json.Marshal(fileURLs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode file urls: %w", err)
		}
		urls = datatypes.JSON(raw)
	}

	submission := model.Submission{
		TaskID:      taskID,
		UserID:      userID,
		Content:     content,
		FileURLs:    urls,
		SubmittedAt: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return fmt.Errorf("failed to create submission: %w", err)
		}
		if err := tx.Model(&model.Task{}).Where("id = ?", taskID).
			Update("status", model.TaskStatusSubmitted).Error; err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	task.Status = model.TaskStatusSubmitted
	s.evaluator.DispatchAsync(submission.ID)

	return &submission, nil
}

// GetSubmission returns one submission after an ownership check.
func (s *InternshipService) GetSubmission(userID, submissionID uint) (*model.Submission, error) {
	var submission model.Submission
	if err := s.db.Preload("Task").First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	if submission.UserID != userID {
		return nil, ErrNotOwner
	}
	return &submission, nil
}

// EvaluateSubmission records a score and feedback for a submission.
// When score or feedback are missing they are generated from the
// submission content. This is the path the external evaluation worker
// calls back into.
func (s *InternshipService) EvaluateSubmission(ctx context.Context, submissionID uint, score *float64, feedback *string) (*model.Submission, error) {
	var submission model.Submission
	err := s.db.Preload("Task").Preload("Task.Internship").Preload("Task.Internship.Industry").
		First(&submission, submissionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}

	// A submission is evaluated exactly once; repeated callbacks must
	// not overwrite the recorded result.
	if submission.EvaluatedAt != nil {
		return nil, ErrTaskAlreadyEvaluated
	}

	task := &submission.Task

	if score == nil || feedback == nil {
		industryName := task.Internship.Industry.Name
		generated := s.supervisor.GenerateFeedback(ctx, industryName, task.Title, task.Description, submission.Content, task.Difficulty)
		if score == nil {
			score = &generated.Score
		}
		if feedback == nil {
			feedback = &generated.Feedback
		}
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"score":        *score,
			"feedback":     *feedback,
			"evaluated_at": now,
		}
		if err := tx.Model(&model.Submission{}).Where("id = ?", submission.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update submission: %w", err)
		}
		if err := tx.Model(&model.Task{}).Where("id = ?", task.ID).
			Update("status", model.TaskStatusEvaluated).Error; err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	submission.Score = score
	submission.Feedback = feedback
	submission.EvaluatedAt = &now
	task.Status = model.TaskStatusEvaluated

	return &submission, nil
}

// CompleteInternship closes out a track and issues its certificate.
// Calling it again after completion returns the existing certificate
// with issued=false.
func (s *InternshipService) CompleteInternship(ctx context.Context, user *model.User, internshipID uint) (*model.Certificate, bool, error) {
	track, err := s.GetInternship(user.ID, internshipID)
	if err != nil {
		return nil, false, err
	}

	// Idempotent: a completed track returns its existing certificate.
	if track.Certificate != nil {
		return track.Certificate, false, nil
	}
	if track.Status == model.TrackStatusCompleted {
		return nil, false, ErrInternshipCompleted
	}

	var submissions []model.Submission
	err = s.db.Joins("JOIN tasks ON tasks.id = submissions.task_id").
		Where("tasks.internship_id = ? AND submissions.user_id = ? AND submissions.score IS NOT NULL", internshipID, user.ID).
		Find(&submissions).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch scored submissions: %w", err)
	}

	scores := make([]float64, 0, len(submissions))
	for _, sub := range submissions {
		if sub.Score != nil {
			scores = append(scores, *sub.Score)
		}
	}
	avgScore := AverageScore(scores)

	plan := s.supervisor.GenerateCertificate(ctx, track.Industry.Name, profileContext(user).FullName, track.Title, len(scores), avgScore)

	certificate := model.Certificate{
		InternshipID:   track.ID,
		UserID:         user.ID,
		Title:          plan.Title,
		Description:    plan.Description,
		Score:          avgScore,
		SkillsAcquired: plan.SkillsAcquired,
		IssuedAt:       time.Now(),
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&certificate).Error; err != nil {
			return fmt.Errorf("failed to create certificate: %w", err)
		}
		updates := map[string]interface{}{
			"status":       model.TrackStatusCompleted,
			"completed_at": now,
			"progress":     100.0,
		}
		if err := tx.Model(&model.InternshipTrack{}).Where("id = ?", track.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update internship: %w", err)
		}
		return nil
	})
	if err != nil {
		// A concurrent completion may have inserted the certificate
		// first; the unique index on internship_id makes the retry read
		// safe.
		var existing model.Certificate
		if lookupErr := s.db.Where("internship_id = ?", track.ID).First(&existing).Error; lookupErr == nil {
			return &existing, false, nil
		}
		return nil, false, err
	}

	log.Printf("internship %d completed by user %d with average score %.1f", track.ID, user.ID, avgScore)
	return &certificate, true, nil
}

// GetCertificate returns a certificate after an ownership check.
func (s *InternshipService) GetCertificate(userID, certificateID uint) (*model.Certificate, error) {
	var cert model.Certificate
	if err := s.db.Preload("Internship").First(&cert, certificateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to fetch certificate: %w", err)
	}
	if cert.UserID != userID {
		return nil, ErrNotOwner
	}
	return &cert, nil
}

// AverageScore computes the arithmetic mean of scores, or 0 for an
// empty slice.
func AverageScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
