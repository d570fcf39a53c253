package db_models

type Admin struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	Courses []Course `gorm:"foreignKey:AdminID"`
}
