package supervisor

import "testing"

func TestValidInternshipBounds(t *testing.T) {
	base := InternshipPlan{Title: "T", Description: "D", DurationWeeks: 6}

	if !validInternship(&base) {
		t.Error("expected valid plan to pass")
	}

	for _, weeks := range []int{0, 3, 13} {
		p := base
		p.DurationWeeks = weeks
		if validInternship(&p) {
			t.Errorf("duration %d should be rejected", weeks)
		}
	}

	empty := base
	empty.Title = ""
	if validInternship(&empty) {
		t.Error("empty title should be rejected")
	}
}

func TestValidTasksRejectsBadDescriptors(t *testing.T) {
	good := TaskPlan{Title: "T", Description: "D", Instructions: "I", Difficulty: "medium", Points: 100}

	if !validTasks([]TaskPlan{good}, 1) {
		t.Error("expected valid task list to pass")
	}
	if validTasks(nil, 2) {
		t.Error("empty list should be rejected")
	}
	if validTasks([]TaskPlan{good}, 2) {
		t.Error("wrong task count should be rejected")
	}
	if validTasks([]TaskPlan{good, good, good}, 2) {
		t.Error("wrong task count should be rejected")
	}

	badPoints := good
	badPoints.Points = 300
	if validTasks([]TaskPlan{badPoints}, 1) {
		t.Error("points over 200 should be rejected")
	}

	badDifficulty := good
	badDifficulty.Difficulty = "brutal"
	if validTasks([]TaskPlan{badDifficulty}, 1) {
		t.Error("unknown difficulty should be rejected")
	}
}

func TestMirrorKey(t *testing.T) {
	got := mirrorKey("internships", "Technology & IT", "Cloud Intern at TechNova")
	want := "internships/technology---it/cloud-intern-at-technova.json"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
