package db_models

import "github.com/google/uuid"

type Course struct {
	BaseModel
	Name    string    `gorm:"not null"`
	AdminID uuid.UUID `gorm:"type:uuid;not null;index"`
}
