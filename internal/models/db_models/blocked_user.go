package db_models

import "github.com/google/uuid"

// BlockedUser is a standing (student, admin) restriction: the student may not
// submit feedback on any course owned by the admin. The unique index keeps
// repeated blocks from piling up duplicate rows.
type BlockedUser struct {
	BaseModel
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_student_admin"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_student_admin"`
}
