package utils

import "errors"

var (
	// invalid input
	ErrInvalidID     = errors.New("invalid identifier")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrWeakPassword  = errors.New("password must be at least 8 characters long and contain at least 1 number and 1 special character")
	ErrInvalidRating = errors.New("rating must be a number between 1 and 5")
	ErrEmptyComment  = errors.New("feedback comment cannot be empty")
	ErrInvalidPhone  = errors.New("invalid phone number format")
	ErrInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")

	// uniqueness violations surfaced from the store
	ErrEmailTaken        = errors.New("an account with this email already exists")
	ErrDuplicateFeedback = errors.New("feedback already given for this course")

	// missing entities
	ErrStudentNotFound  = errors.New("student not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrBlockNotFound    = errors.New("block record not found")

	// auth failures; login failures stay generic on purpose
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("incorrect current password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// blocked student attempting feedback
	ErrStudentBlocked = errors.New("student is blocked by the course admin")

	ErrDatabaseError = errors.New("database error")
)
