package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()

	// digits with optional leading +, separators allowed between groups
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 .\-()]{5,18}[0-9]$`)
)

// ValidateEmail checks email syntax only; deliverability is not our problem.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePasswordStrength enforces the signup policy: at least 8 characters,
// at least one digit and one symbol. Letter case is not required.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
		default:
			hasSymbol = true
		}
	}
	if !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}
	return nil
}

func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateISODate accepts calendar-valid YYYY-MM-DD dates; time.Parse rejects
// impossible dates like 2023-02-30.
func ValidateISODate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateRating checks the 1-5 feedback scale.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

func ValidateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return ErrEmptyComment
	}
	return nil
}
