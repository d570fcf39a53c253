package repositories

import (
	"context"

	"campusvoice/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepositoryInterface interface {
	Insert(ctx context.Context, feedback *db_models.Feedback) error
	Update(ctx context.Context, id uuid.UUID, rating int, comment string) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, rating *int) ([]db_models.Feedback, error)
	ListByCourses(ctx context.Context, courseIDs []uuid.UUID, studentID *uuid.UUID, rating *int) ([]db_models.Feedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Insert(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackRepository) Update(ctx context.Context, id uuid.UUID, rating int, comment string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "comment": comment})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FeedbackRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Feedback{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FeedbackRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, rating *int) ([]db_models.Feedback, error) {
	q := r.db.WithContext(ctx).Where("student_id = ?", studentID)
	if rating != nil {
		q = q.Where("rating = ?", *rating)
	}

	var feedbacks []db_models.Feedback
	err := q.Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

// ListByCourses returns feedback restricted to the given course-id set; the
// caller is responsible for scoping that set to the acting admin.
func (r *FeedbackRepository) ListByCourses(ctx context.Context, courseIDs []uuid.UUID, studentID *uuid.UUID, rating *int) ([]db_models.Feedback, error) {
	q := r.db.WithContext(ctx).Where("course_id IN ?", courseIDs)
	if studentID != nil {
		q = q.Where("student_id = ?", *studentID)
	}
	if rating != nil {
		q = q.Where("rating = ?", *rating)
	}

	var feedbacks []db_models.Feedback
	err := q.Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}
