package middleware

import (
	"strings"
	"testing"
)

func TestValidateKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keyword string
		wantErr error
	}{
		{"valid keyword", "machine learning", nil},
		{"minimum length", "go", nil},
		{"empty", "", ErrKeywordEmpty},
		{"whitespace only", "   ", ErrKeywordEmpty},
		{"too short", "a", ErrKeywordTooShort},
		{"too short after trim", " a ", ErrKeywordTooShort},
		{"too long", strings.Repeat("k", 201), ErrKeywordTooLong},
		{"max length ok", strings.Repeat("k", 200), nil},
		{"trimmed within limit", " " + strings.Repeat("k", 200) + " ", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := ValidateKeyword(tt.keyword); err != tt.wantErr {
				t.Errorf("ValidateKeyword(%q) = %v, want %v", tt.keyword, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUserGoal(t *testing.T) {
	t.Parallel()

	if err := ValidateUserGoal(""); err != nil {
		t.Errorf("empty goal should be valid: %v", err)
	}
	if err := ValidateUserGoal("increase organic traffic"); err != nil {
		t.Errorf("normal goal should be valid: %v", err)
	}
	if err := ValidateUserGoal(strings.Repeat("g", 501)); err != ErrUserGoalTooLong {
		t.Errorf("expected ErrUserGoalTooLong, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.co", true},
		{"", false},
		{"no-at-sign.example.com", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user @example.com", false},
		{strings.Repeat("a", 250) + "@x.com", false},
	}

	for _, tt := range tests {
		tt := tt
		err := ValidateEmail(tt.email)
		if tt.valid && err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", tt.email, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", tt.email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	if err := ValidatePassword("short"); err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := ValidatePassword("long enough secret"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}
}
