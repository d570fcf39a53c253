package db_models

type Student struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// optional profile fields, set after signup
	Phone       string
	DateOfBirth string
	Address     string

	Feedbacks []Feedback `gorm:"foreignKey:StudentID"`
}
