package repositories

import (
	"context"
	"errors"

	"campusvoice/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Insert(ctx context.Context, course *db_models.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Course, error)
	FindByIDAndAdmin(ctx context.Context, id, adminID uuid.UUID) (*db_models.Course, error)
	ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]db_models.Course, error)
	ListIDsByAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Insert(ctx context.Context, course *db_models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) FindByIDAndAdmin(ctx context.Context, id, adminID uuid.UUID) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).
		Where("id = ? AND admin_id = ?", id, adminID).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at ASC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) ListIDsByAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.Course{}).
		Where("admin_id = ?", adminID).
		Pluck("id", &ids).Error
	return ids, err
}

// UpdateName renames a course; false means no such course.
func (r *courseRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Course{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteByID reports whether a row was actually removed; a missing course is
// not an error here, the caller decides what that means.
func (r *courseRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Course{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
