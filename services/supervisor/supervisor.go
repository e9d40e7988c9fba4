package supervisor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sahilchouksey/internship-simulator/services/llm"
	"github.com/sahilchouksey/internship-simulator/utils/jsonx"
)

// Generation timeout for a single model call. The caller's context can
// shorten it but never extend it.
const generationTimeout = 30 * time.Second

// InternshipPlan is a generated internship track outline.
type InternshipPlan struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	DurationWeeks int    `json:"duration_weeks"`
}

// TaskPlan is a single generated task descriptor.
type TaskPlan struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Difficulty   string `json:"difficulty"`
	Points       int    `json:"points"`
}

// Feedback is a generated evaluation of a submission.
type Feedback struct {
	Score     float64  `json:"score"`
	Feedback  string   `json:"feedback"`
	NextSteps []string `json:"next_steps"`
}

// Resource is a suggested learning resource.
type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// CertificatePlan is generated certificate content.
type CertificatePlan struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	SkillsAcquired string `json:"skills_acquired"`
}

// Mirror receives a copy of generated content for archival. Mirroring
// is best effort and never affects the returned result.
type Mirror interface {
	PutJSON(ctx context.Context, key string, value interface{}) error
}

// Supervisor generates internship content. Every method is total: when
// the model client is nil, the call fails, times out, or the response
// cannot be parsed into the expected shape, a deterministic fallback
// built from the inputs is returned instead. Callers never see an
// error from generation.
type Supervisor struct {
	client *llm.Client
	mirror Mirror
}

// New returns a Supervisor. Both client and mirror may be nil; a nil
// client disables model calls entirely so only fallbacks are served.
func New(client *llm.Client, mirror Mirror) *Supervisor {
	if client == nil {
		log.Println("supervisor: no model credentials configured, serving fallback content")
	}
	return &Supervisor{client: client, mirror: mirror}
}

// Enabled reports whether model-backed generation is configured.
func (s *Supervisor) Enabled() bool {
	return s.client != nil
}

func (s *Supervisor) complete(ctx context.Context, p Prompt, opts ...llm.Option) (string, bool) {
	if s.client == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := s.client.JSONCompletion(ctx, p.System, p.User, opts...)
	if err != nil {
		log.Printf("supervisor: model call failed: %v", err)
		return "", false
	}
	return raw, true
}

func (s *Supervisor) mirrorJSON(key string, value interface{}) {
	if s.mirror == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.mirror.PutJSON(ctx, key, value); err != nil {
			log.Printf("supervisor: mirror write failed for %s: %v", key, err)
		}
	}()
}

// GenerateInternship produces an internship outline for the given
// industry and intern profile.
func (s *Supervisor) GenerateInternship(ctx context.Context, industry string, intern GenerationContext) *InternshipPlan {
	if raw, ok := s.complete(ctx, internshipPrompt(industry, intern)); ok {
		var plan InternshipPlan
		if err := jsonx.ExtractTo(raw, &plan); err != nil {
			log.Printf("supervisor: unusable internship response: %v", err)
		} else if validInternship(&plan) {
			s.mirrorJSON(mirrorKey("internships", industry, plan.Title), &plan)
			return &plan
		}
	}

	plan := fallbackInternship(industry, intern)
	s.mirrorJSON(mirrorKey("internships", industry, plan.Title), plan)
	return plan
}

func validInternship(p *InternshipPlan) bool {
	return p.Title != "" && p.Description != "" &&
		p.DurationWeeks >= 4 && p.DurationWeeks <= 12
}

// GenerateTasks produces the task set for one week of an internship.
func (s *Supervisor) GenerateTasks(ctx context.Context, industry, companyName string, intern GenerationContext, week int, difficulty string) []TaskPlan {
	if raw, ok := s.complete(ctx, taskGenerationPrompt(industry, companyName, intern, week, difficulty), llm.WithMaxTokens(2000)); ok {
		var tasks []TaskPlan
		if err := jsonx.ExtractTo(raw, &tasks); err != nil {
			log.Printf("supervisor: unusable task response: %v", err)
		} else if validTasks(tasks, tasksPerWeek(week)) {
			s.mirrorJSON(mirrorKey("tasks", industry, fmt.Sprintf("week-%d", week)), tasks)
			return tasks
		}
	}

	tasks := fallbackTasks(industry, week)
	s.mirrorJSON(mirrorKey("tasks", industry, fmt.Sprintf("week-%d", week)), tasks)
	return tasks
}

func validTasks(tasks []TaskPlan, want int) bool {
	if len(tasks) != want {
		return false
	}
	for _, t := range tasks {
		if t.Title == "" || t.Instructions == "" {
			return false
		}
		if t.Points < 50 || t.Points > 200 {
			return false
		}
		switch t.Difficulty {
		case "easy", "medium", "hard":
		default:
			return false
		}
	}
	return true
}

// GenerateFeedback evaluates a submission and produces a score with
// written feedback.
func (s *Supervisor) GenerateFeedback(ctx context.Context, industry, taskTitle, taskDescription, submissionContent, taskDifficulty string) *Feedback {
	if raw, ok := s.complete(ctx, feedbackPrompt(industry, taskTitle, taskDescription, submissionContent, taskDifficulty)); ok {
		var fb Feedback
		if err := jsonx.ExtractTo(raw, &fb); err != nil {
			log.Printf("supervisor: unusable feedback response: %v", err)
		} else if fb.Feedback != "" && fb.Score >= 0 && fb.Score <= 100 {
			return &fb
		}
	}

	return fallbackFeedback(taskTitle, taskDifficulty)
}

// Ask answers a free-form intern question with the supervisor persona.
func (s *Supervisor) Ask(ctx context.Context, industry, question string, intern *GenerationContext, task *ChatTaskContext, progress *ChatProgress) string {
	if s.client != nil {
		callCtx, cancel := context.WithTimeout(ctx, generationTimeout)
		defer cancel()

		p := chatPrompt(industry, question, intern, task, progress)
		answer, err := s.client.SimpleCompletion(callCtx, p.System, p.User)
		if err != nil {
			log.Printf("supervisor: chat call failed: %v", err)
		} else if strings.TrimSpace(answer) != "" {
			return strings.TrimSpace(answer)
		}
	}

	return fallbackChatResponse(question, industry)
}

// SuggestResources produces learning resources for a task.
func (s *Supervisor) SuggestResources(ctx context.Context, industry, taskTitle, taskDescription string) []Resource {
	if raw, ok := s.complete(ctx, resourcesPrompt(industry, taskTitle, taskDescription)); ok {
		var resources []Resource
		if err := jsonx.ExtractTo(raw, &resources); err != nil {
			log.Printf("supervisor: unusable resource response: %v", err)
		} else if validResources(resources) {
			return resources
		}
	}

	return fallbackResources(industry)
}

func validResources(resources []Resource) bool {
	if len(resources) == 0 {
		return false
	}
	for _, r := range resources {
		if r.Title == "" || r.URL == "" {
			return false
		}
	}
	return true
}

// GenerateCertificate produces certificate content for a completed
// internship.
func (s *Supervisor) GenerateCertificate(ctx context.Context, industry, userName, internshipTitle string, tasksCompleted int, avgScore float64) *CertificatePlan {
	if raw, ok := s.complete(ctx, certificatePrompt(industry, userName, internshipTitle, tasksCompleted, avgScore)); ok {
		var cert CertificatePlan
		if err := jsonx.ExtractTo(raw, &cert); err != nil {
			log.Printf("supervisor: unusable certificate response: %v", err)
		} else if cert.Title != "" && cert.Description != "" && cert.SkillsAcquired != "" {
			s.mirrorJSON(mirrorKey("certificates", industry, cert.Title), &cert)
			return &cert
		}
	}

	cert := fallbackCertificate(userName, internshipTitle, industry, avgScore)
	s.mirrorJSON(mirrorKey("certificates", industry, cert.Title), cert)
	return cert
}

func mirrorKey(kind, industry, name string) string {
	slug := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		var b strings.Builder
		for _, r := range s {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				b.WriteRune(r)
			case r == ' ', r == '-', r == '_', r == '&':
				b.WriteRune('-')
			}
		}
		return strings.Trim(b.String(), "-")
	}
	return fmt.Sprintf("%s/%s/%s.json", kind, slug(industry), slug(name))
}
