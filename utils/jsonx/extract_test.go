package jsonx

import (
	"errors"
	"testing"
)

func TestExtractPlainObject(t *testing.T) {
	got, err := Extract(`{"title": "Intern", "weeks": 6}`)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"title": "Intern", "weeks": 6}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractMarkdownFence(t *testing.T) {
	input := "```json\n{\"score\": 85}\n```"
	got, err := Extract(input)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"score": 85}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractSurroundingProse(t *testing.T) {
	input := `Here is your evaluation:

{"score": 90, "feedback": "Nice work"}

Let me know if you have questions.`

	var result struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := ExtractTo(input, &result); err != nil {
		t.Fatal(err)
	}
	if result.Score != 90 || result.Feedback != "Nice work" {
		t.Errorf("got %+v", result)
	}
}

func TestExtractArray(t *testing.T) {
	input := "The tasks are:\n[{\"title\": \"A\"}, {\"title\": \"B\"}]"

	var tasks []struct {
		Title string `json:"title"`
	}
	if err := ExtractTo(input, &tasks); err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 || tasks[0].Title != "A" {
		t.Errorf("got %+v", tasks)
	}
}

func TestExtractBracesInsideStrings(t *testing.T) {
	input := `{"feedback": "use {braces} carefully", "score": 70}`

	var result struct {
		Feedback string  `json:"feedback"`
		Score    float64 `json:"score"`
	}
	if err := ExtractTo(input, &result); err != nil {
		t.Fatal(err)
	}
	if result.Feedback != "use {braces} carefully" {
		t.Errorf("got %q", result.Feedback)
	}
}

func TestExtractNoJSON(t *testing.T) {
	for _, input := range []string{"", "no json here", "{broken"} {
		if _, err := Extract(input); !errors.Is(err, ErrNoJSONFound) {
			t.Errorf("input %q: expected ErrNoJSONFound, got %v", input, err)
		}
	}
}
