package validator

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidRiskLevel = errors.New("risk level must be between 1 and 5")
	ErrInvalidFormat    = errors.New("format must be json or pdf")
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrInvalidPassword
	}
	return nil
}

// ValidateRiskLevel is opt-in: the entity API stores risk levels as given
// and leaves range enforcement to callers.
func ValidateRiskLevel(level int) error {
	if level < 1 || level > 5 {
		return ErrInvalidRiskLevel
	}
	return nil
}

func ValidateReportFormat(format string) error {
	if format != "json" && format != "pdf" {
		return ErrInvalidFormat
	}
	return nil
}
