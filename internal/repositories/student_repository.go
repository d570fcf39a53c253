package repositories

import (
	"context"
	"errors"

	"campusvoice/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Insert(ctx context.Context, student *db_models.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Student, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Student, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (bool, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Insert(ctx context.Context, student *db_models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Student, error) {
	var student db_models.Student
	err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &student, nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*db_models.Student, error) {
	var student db_models.Student
	err := r.db.WithContext(ctx).First(&student, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &student, nil
}

// UpdateFields applies a targeted partial update; the bool reports whether a
// row matched at all.
func (r *studentRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Student{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
