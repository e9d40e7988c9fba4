package validation

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("%q should be valid", email)
		}
	}

	invalid := []string{"", "nope", "user@", "@example.com", "user@example"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("%q should be invalid", email)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if ok, _ := ValidateUsername("jordan_smith-1"); !ok {
		t.Error("expected valid username")
	}

	cases := []string{"ab", strings.Repeat("x", 65), "has space", "bad!char"}
	for _, username := range cases {
		if ok, reason := ValidateUsername(username); ok || reason == "" {
			t.Errorf("%q should be invalid with a reason", username)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Errorf("got %q", got)
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=3"`
	}

	v := NewValidator()

	if err := v.ValidateStruct(&payload{Email: "a@b.com", Name: "Jordan"}); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}

	err := v.ValidateStruct(&payload{Email: "not-an-email", Name: "J"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := FormatValidationErrors(err)
	if formatted["email"] != "Invalid email format" {
		t.Errorf("email error %q", formatted["email"])
	}
	if formatted["name"] == "" {
		t.Error("expected a name error")
	}
}
