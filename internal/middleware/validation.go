package middleware

import (
	"errors"
	"strings"
)

// Validation limits.
const (
	// MinKeywordLength is the shortest keyword accepted for analysis.
	MinKeywordLength = 2

	// MaxKeywordLength is the longest keyword accepted for analysis.
	MaxKeywordLength = 200

	// MaxUserGoalLength caps the optional user goal text.
	MaxUserGoalLength = 500

	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8

	// MaxEmailLength caps registration email addresses.
	MaxEmailLength = 254
)

// Validation errors.
var (
	ErrKeywordEmpty     = errors.New("keyword must not be empty")
	ErrKeywordTooShort  = errors.New("keyword is too short")
	ErrKeywordTooLong   = errors.New("keyword exceeds maximum length")
	ErrUserGoalTooLong  = errors.New("user goal exceeds maximum length")
	ErrEmailInvalid     = errors.New("email address is invalid")
	ErrPasswordTooShort = errors.New("password is too short")
)

// ValidateKeyword checks that a keyword is usable for retrieval and
// generation. Leading and trailing whitespace does not count toward
// the length limits.
func ValidateKeyword(keyword string) error {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return ErrKeywordEmpty
	}
	if len(trimmed) < MinKeywordLength {
		return ErrKeywordTooShort
	}
	if len(trimmed) > MaxKeywordLength {
		return ErrKeywordTooLong
	}
	return nil
}

// ValidateUserGoal checks the optional goal text. Empty is valid.
func ValidateUserGoal(goal string) error {
	if len(goal) > MaxUserGoalLength {
		return ErrUserGoalTooLong
	}
	return nil
}

// ValidateEmail performs a structural check on an email address. Full
// RFC validation is deliberately out of scope; delivery is the real test.
func ValidateEmail(email string) error {
	if email == "" || len(email) > MaxEmailLength {
		return ErrEmailInvalid
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailInvalid
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.ContainsAny(email, " \t\n") {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
