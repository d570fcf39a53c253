package db_models

import "github.com/google/uuid"

// Feedback holds one student's review of one course. The composite unique
// index is the store-level guarantee behind the one-feedback-per-pair rule.
type Feedback struct {
	BaseModel
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_student_course"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_student_course"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `gorm:"type:text;not null"`
}
