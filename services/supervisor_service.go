package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/services/supervisor"
	"github.com/sahilchouksey/internship-simulator/utils/cache"
)

const resourceCacheTTL = 24 * time.Hour

// SupervisorService answers intern questions and suggests resources,
// resolving the optional internship/task context and caching resource
// suggestions per task.
type SupervisorService struct {
	db         *gorm.DB
	supervisor *supervisor.Supervisor
	cache      *cache.RedisCache
}

// NewSupervisorService creates the service. The cache may be nil, in
// which case resource suggestions are generated on every request.
func NewSupervisorService(db *gorm.DB, sup *supervisor.Supervisor, redis *cache.RedisCache) *SupervisorService {
	return &SupervisorService{
		db:         db,
		supervisor: sup,
		cache:      redis,
	}
}

// Ask answers a free-form question. internshipID and taskID are
// optional; when present they must belong to the calling user and
// their details are fed into the supervisor persona.
func (s *SupervisorService) Ask(ctx context.Context, user *model.User, question string, internshipID, taskID *uint) (string, error) {
	industryName := ""
	var progress *supervisor.ChatProgress
	var taskCtx *supervisor.ChatTaskContext

	if internshipID != nil {
		var track model.InternshipTrack
		err := s.db.Preload("Industry").First(&track, *internshipID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrInternshipNotFound
			}
			return "", fmt.Errorf("failed to fetch internship: %w", err)
		}
		if track.UserID != user.ID {
			return "", ErrNotOwner
		}

		industryName = track.Industry.Name
		progress = s.trackProgress(&track)
	}

	if taskID != nil {
		var task model.Task
		err := s.db.Preload("Internship").Preload("Internship.Industry").First(&task, *taskID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrTaskNotFound
			}
			return "", fmt.Errorf("failed to fetch task: %w", err)
		}
		if task.Internship.UserID != user.ID {
			return "", ErrNotOwner
		}

		if industryName == "" {
			industryName = task.Internship.Industry.Name
		}
		taskCtx = &supervisor.ChatTaskContext{
			Title:       task.Title,
			Description: task.Description,
			Difficulty:  task.Difficulty,
		}
	}

	internCtx := profileContext(user)
	return s.supervisor.Ask(ctx, industryName, question, &internCtx, taskCtx, progress), nil
}

// trackProgress summarizes a track for the chat prompt. Week number is
// derived from the start date, capped at the track duration.
func (s *SupervisorService) trackProgress(track *model.InternshipTrack) *supervisor.ChatProgress {
	week := int(time.Since(track.StartedAt).Hours()/(24*7)) + 1
	if track.DurationWeeks > 0 && week > track.DurationWeeks {
		week = track.DurationWeeks
	}

	var completed int64
	var avg *float64
	s.db.Model(&model.Task{}).
		Where("internship_id = ? AND status = ?", track.ID, model.TaskStatusEvaluated).
		Count(&completed)
	s.db.Model(&model.Submission{}).
		Joins("JOIN tasks ON tasks.id = submissions.task_id").
		Where("tasks.internship_id = ? AND submissions.score IS NOT NULL", track.ID).
		Select("AVG(submissions.score)").
		Scan(&avg)

	p := &supervisor.ChatProgress{
		Week:           week,
		CompletedTasks: int(completed),
	}
	if avg != nil {
		p.AvgScore = *avg
	}
	return p
}

// SuggestResources returns learning resources for a task the user
// owns. Results are cached per task since suggestions only depend on
// the task itself.
func (s *SupervisorService) SuggestResources(ctx context.Context, user *model.User, taskID uint) ([]supervisor.Resource, error) {
	var task model.Task
	err := s.db.Preload("Internship").Preload("Internship.Industry").First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	if task.Internship.UserID != user.ID {
		return nil, ErrNotOwner
	}

	cacheKey := fmt.Sprintf("resources:task:%d", task.ID)
	if s.cache != nil {
		var cached []supervisor.Resource
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		} else if err != nil && !errors.Is(err, cache.ErrNotFound) {
			log.Printf("supervisor: resource cache read failed: %v", err)
		}
	}

	resources := s.supervisor.SuggestResources(ctx, task.Internship.Industry.Name, task.Title, task.Description)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, resources, resourceCacheTTL); err != nil {
			log.Printf("supervisor: resource cache write failed: %v", err)
		}
	}

	return resources, nil
}
