package supervisor

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

var testIntern = GenerationContext{
	FullName:        "Jordan Smith",
	Major:           "Computer Science",
	University:      "State University",
	CareerInterests: "cloud computing",
}

// A Supervisor without a model client must still produce valid results
// for every operation.
func TestDisabledSupervisorIsTotal(t *testing.T) {
	s := New(nil, nil)
	ctx := context.Background()

	plan := s.GenerateInternship(ctx, "Technology & IT", testIntern)
	if plan.Title == "" || plan.Description == "" {
		t.Error("expected non-empty internship title and description")
	}
	if plan.DurationWeeks < 4 || plan.DurationWeeks > 12 {
		t.Errorf("duration %d outside [4,12]", plan.DurationWeeks)
	}

	tasks := s.GenerateTasks(ctx, "Technology & IT", "", testIntern, 1, "")
	if len(tasks) == 0 {
		t.Fatal("expected tasks")
	}

	fb := s.GenerateFeedback(ctx, "Technology & IT", "Sample Task", "A task", "my work", "medium")
	if fb.Score < 0 || fb.Score > 100 || fb.Feedback == "" {
		t.Errorf("invalid feedback: score=%v feedback=%q", fb.Score, fb.Feedback)
	}

	answer := s.Ask(ctx, "Technology & IT", "How do I submit my task?", nil, nil, nil)
	if answer == "" {
		t.Error("expected non-empty chat answer")
	}

	resources := s.SuggestResources(ctx, "Technology & IT", "Sample Task", "A task")
	if len(resources) == 0 {
		t.Error("expected resources")
	}

	cert := s.GenerateCertificate(ctx, "Technology & IT", "Jordan Smith", "Tech Internship", 6, 85)
	if cert.Title == "" || cert.Description == "" || cert.SkillsAcquired == "" {
		t.Error("expected complete certificate content")
	}
}

func TestFallbackInternship(t *testing.T) {
	plan := fallbackInternship("Healthcare", testIntern)

	if plan.Title != "Healthcare Virtual Internship" {
		t.Errorf("unexpected title %q", plan.Title)
	}
	if plan.DurationWeeks != 6 {
		t.Errorf("expected 6 week duration, got %d", plan.DurationWeeks)
	}
	if !strings.Contains(plan.Description, "Computer Science") || !strings.Contains(plan.Description, "cloud computing") {
		t.Errorf("description should mention major and interests: %q", plan.Description)
	}

	// Same inputs, same output.
	again := fallbackInternship("Healthcare", testIntern)
	if *again != *plan {
		t.Error("fallback internship is not deterministic")
	}
}

func TestFallbackTaskCounts(t *testing.T) {
	for week, want := range map[int]int{1: 3, 2: 2, 3: 2, 6: 2} {
		tasks := fallbackTasks("Marketing", week)
		if len(tasks) != want {
			t.Errorf("week %d: got %d tasks, want %d", week, len(tasks), want)
		}
	}
}

func TestFallbackTaskShape(t *testing.T) {
	for _, week := range []int{1, 4} {
		for _, task := range fallbackTasks("Fintech", week) {
			if task.Title == "" || task.Description == "" || task.Instructions == "" {
				t.Errorf("week %d: incomplete task %+v", week, task)
			}
			if task.Points < 50 || task.Points > 200 {
				t.Errorf("week %d: points %d outside [50,200]", week, task.Points)
			}
			switch task.Difficulty {
			case "easy", "medium", "hard":
			default:
				t.Errorf("week %d: bad difficulty %q", week, task.Difficulty)
			}
		}
	}
}

func TestFallbackFeedbackScoresByDifficulty(t *testing.T) {
	cases := map[string]float64{
		"easy":   75,
		"medium": 70,
		"hard":   65,
		"":       70, // unknown difficulty treated as medium
		"HARD":   65, // case insensitive
	}

	for difficulty, want := range cases {
		fb := fallbackFeedback("Week 1 Research Assignment", difficulty)
		if fb.Score != want {
			t.Errorf("difficulty %q: score %v, want %v", difficulty, fb.Score, want)
		}
		if !strings.Contains(fb.Feedback, "Week 1 Research Assignment") {
			t.Errorf("difficulty %q: feedback does not name the task", difficulty)
		}
		if len(fb.NextSteps) < 2 || len(fb.NextSteps) > 3 {
			t.Errorf("difficulty %q: %d next steps", difficulty, len(fb.NextSteps))
		}
	}
}

func TestFallbackResources(t *testing.T) {
	for _, industry := range []string{"Fintech", "Healthcare", "Law & Government"} {
		resources := fallbackResources(industry)
		if len(resources) != 3 {
			t.Errorf("%s: got %d resources, want 3", industry, len(resources))
		}
		last := resources[len(resources)-1]
		if last.Title != "Professional Development Planning" {
			t.Errorf("%s: last resource %q, want the professional development guide", industry, last.Title)
		}
	}

	// Unknown industries get the generic pair plus the appended guide.
	generic := fallbackResources("Basket Weaving")
	if len(generic) != 3 {
		t.Fatalf("unknown industry: got %d resources, want 3", len(generic))
	}
	if generic[0].Title != "Professional Communication Skills" {
		t.Errorf("unknown industry: first resource %q", generic[0].Title)
	}
	for _, r := range generic {
		if r.Title == "" || r.Type == "" || r.URL == "" {
			t.Errorf("incomplete resource %+v", r)
		}
	}
}

func TestFallbackCertificateTiers(t *testing.T) {
	cases := map[float64]string{
		95:   "excellent",
		90:   "excellent",
		85:   "strong",
		80:   "strong",
		75:   "good",
		70:   "good",
		69.9: "satisfactory",
		0:    "satisfactory",
	}

	for avg, tier := range cases {
		cert := fallbackCertificate("Jordan Smith", "Fintech Internship", "Fintech", avg)
		if !strings.Contains(cert.Description, tier+" performance") {
			t.Errorf("avg %v: description missing %q tier: %q", avg, tier, cert.Description)
		}
		if !strings.Contains(cert.Description, fmt.Sprintf("%.1f/100", avg)) {
			t.Errorf("avg %v: description missing formatted score", avg)
		}
	}
}

func TestFallbackCertificateSkills(t *testing.T) {
	cert := fallbackCertificate("Jordan Smith", "Internship", "Arts & Design", 80)
	if !strings.Contains(cert.SkillsAcquired, "Visual design principles") {
		t.Errorf("expected industry skills, got %q", cert.SkillsAcquired)
	}

	generic := fallbackCertificate("Jordan Smith", "Internship", "Unknown Industry", 80)
	if !strings.Contains(generic.SkillsAcquired, "Critical thinking") {
		t.Errorf("expected generic skills, got %q", generic.SkillsAcquired)
	}
	if generic.Title != "Certificate of Completion: Internship" {
		t.Errorf("unexpected title %q", generic.Title)
	}
}

func TestFallbackChatResponseRouting(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"What is this internship program about?", "virtual internship program"},
		{"How do I submit my assignment?", "current task"},
		{"When do I get my score?", "0-100"},
		{"I'm stuck and confused", "smaller steps"},
		{"Any articles I should read?", "learning resources"},
		{"Do I get a certificate when I finish?", "certificate"},
		{"Tell me something", "could you provide more specific details"},
	}

	for _, tc := range cases {
		got := fallbackChatResponse(tc.question, "Marketing")
		if !strings.Contains(got, tc.want) {
			t.Errorf("question %q: answer %q does not contain %q", tc.question, got, tc.want)
		}
	}
}

func TestDifficultyForWeek(t *testing.T) {
	cases := map[int]string{
		0: "introductory",
		1: "introductory",
		2: "intermediate",
		3: "intermediate",
		4: "challenging",
		9: "challenging",
	}
	for week, want := range cases {
		if got := difficultyForWeek(week); got != want {
			t.Errorf("week %d: got %q, want %q", week, got, want)
		}
	}
}

func TestIndustryContextFallsBackForUnknown(t *testing.T) {
	known := baseSupervisorContext("Fintech", "Acme Bank")
	if !strings.Contains(known, "at Acme Bank") || !strings.Contains(known, "blockchain") {
		t.Errorf("fintech context missing expected content")
	}

	unknown := baseSupervisorContext("Basket Weaving", "")
	if !strings.Contains(unknown, "professional environment relevant to your field") {
		t.Errorf("unknown industry should use the generic context")
	}
}
