package services

import (
	"testing"

	"github.com/sahilchouksey/internship-simulator/model"
)

func TestAverageScore(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{80}, 80},
		{"several", []float64{80, 90, 100}, 90},
		{"fractional", []float64{70, 75}, 72.5},
	}

	for _, tc := range cases {
		if got := AverageScore(tc.scores); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestProfileContext(t *testing.T) {
	user := &model.User{
		Username: "jsmith",
		Profile: &model.UserProfile{
			FullName:        "Jordan Smith",
			Major:           "Finance",
			University:      "State University",
			CareerInterests: "investment banking",
		},
	}

	ctx := profileContext(user)
	if ctx.FullName != "Jordan Smith" {
		t.Errorf("got full name %q", ctx.FullName)
	}
	if ctx.Major != "Finance" || ctx.CareerInterests != "investment banking" {
		t.Errorf("profile fields not carried over: %+v", ctx)
	}
}

func TestProfileContextWithoutProfile(t *testing.T) {
	user := &model.User{Username: "jsmith"}

	ctx := profileContext(user)
	if ctx.FullName != "jsmith" {
		t.Errorf("expected username fallback, got %q", ctx.FullName)
	}
	if ctx.Major != "" {
		t.Errorf("expected empty major, got %q", ctx.Major)
	}
}

func TestProfileContextEmptyFullName(t *testing.T) {
	user := &model.User{
		Username: "jsmith",
		Profile:  &model.UserProfile{Major: "Finance"},
	}

	if got := profileContext(user).FullName; got != "jsmith" {
		t.Errorf("expected username when profile name is blank, got %q", got)
	}
}
