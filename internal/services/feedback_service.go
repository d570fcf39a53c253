package services

import (
	"context"
	"errors"
	"log"

	"campusvoice/internal/models/db_models"
	"campusvoice/internal/repositories"
	"campusvoice/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, studentID, courseID string, rating int, comment string) (uuid.UUID, error)
	EditFeedback(ctx context.Context, feedbackID string, rating int, comment string) (bool, error)
	DeleteFeedback(ctx context.Context, feedbackID string) (bool, error)
	ListForStudent(ctx context.Context, studentID string, rating *int) ([]db_models.Feedback, error)
	ListForAdmin(ctx context.Context, adminID string, courseID, studentID *string, rating *int) ([]db_models.Feedback, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	courseRepo   repositories.CourseRepository
	blockRepo    repositories.BlockRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	courseRepo repositories.CourseRepository,
	blockRepo repositories.BlockRepository,
) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		courseRepo:   courseRepo,
		blockRepo:    blockRepo,
	}
}

// SubmitFeedback runs the checks in a fixed order: identifiers, course
// resolution, block check, content validation, insert. The block check comes
// before the insert so a blocked student is rejected even on a first-ever
// submission, ahead of any duplicate-pair outcome.
//
// The block check and the insert are two separate statements, not a
// transaction: a submission racing a concurrent block can land just before
// the block takes effect. Known and accepted.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, studentID, courseID string, rating int, comment string) (uuid.UUID, error) {
	sid, err := uuid.Parse(studentID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidID
	}
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidID
	}

	course, err := s.courseRepo.FindByID(ctx, cid)
	if err != nil {
		log.Printf("Error resolving course: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	if course == nil {
		return uuid.Nil, utils.ErrCourseNotFound
	}

	blocked, err := s.blockRepo.Exists(ctx, sid, course.AdminID)
	if err != nil {
		log.Printf("Error checking block record: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	if blocked {
		return uuid.Nil, utils.ErrStudentBlocked
	}

	if err := utils.ValidateRating(rating); err != nil {
		return uuid.Nil, err
	}
	if err := utils.ValidateComment(comment); err != nil {
		return uuid.Nil, err
	}

	feedback := &db_models.Feedback{
		StudentID: sid,
		CourseID:  cid,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.feedbackRepo.Insert(ctx, feedback); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, utils.ErrDuplicateFeedback
		}
		log.Printf("Error inserting feedback: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	return feedback.ID, nil
}

func (s *FeedbackService) EditFeedback(ctx context.Context, feedbackID string, rating int, comment string) (bool, error) {
	fid, err := uuid.Parse(feedbackID)
	if err != nil {
		return false, utils.ErrInvalidID
	}
	if err := utils.ValidateRating(rating); err != nil {
		return false, err
	}
	if err := utils.ValidateComment(comment); err != nil {
		return false, err
	}

	found, err := s.feedbackRepo.Update(ctx, fid, rating, comment)
	if err != nil {
		log.Printf("Error updating feedback: %v", err)
		return false, utils.ErrDatabaseError
	}
	return found, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, feedbackID string) (bool, error) {
	fid, err := uuid.Parse(feedbackID)
	if err != nil {
		return false, utils.ErrInvalidID
	}

	deleted, err := s.feedbackRepo.DeleteByID(ctx, fid)
	if err != nil {
		log.Printf("Error deleting feedback: %v", err)
		return false, utils.ErrDatabaseError
	}
	return deleted, nil
}

func (s *FeedbackService) ListForStudent(ctx context.Context, studentID string, rating *int) ([]db_models.Feedback, error) {
	sid, err := uuid.Parse(studentID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	feedbacks, err := s.feedbackRepo.ListByStudent(ctx, sid, rating)
	if err != nil {
		log.Printf("Error listing student feedback: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return feedbacks, nil
}

// ListForAdmin restricts results to courses the admin owns. Without a course
// filter the admin's whole course-id set bounds the query, and an empty set
// short-circuits to an empty result without touching the feedback table. A
// course filter naming someone else's course also comes back empty.
func (s *FeedbackService) ListForAdmin(ctx context.Context, adminID string, courseID, studentID *string, rating *int) ([]db_models.Feedback, error) {
	aid, err := uuid.Parse(adminID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	var targetCourseIDs []uuid.UUID
	if courseID != nil {
		cid, err := uuid.Parse(*courseID)
		if err != nil {
			return nil, utils.ErrInvalidID
		}
		course, err := s.courseRepo.FindByIDAndAdmin(ctx, cid, aid)
		if err != nil {
			log.Printf("Error resolving course: %v", err)
			return nil, utils.ErrDatabaseError
		}
		if course == nil {
			return []db_models.Feedback{}, nil
		}
		targetCourseIDs = []uuid.UUID{cid}
	} else {
		ids, err := s.courseRepo.ListIDsByAdmin(ctx, aid)
		if err != nil {
			log.Printf("Error listing course ids: %v", err)
			return nil, utils.ErrDatabaseError
		}
		targetCourseIDs = ids
	}

	if len(targetCourseIDs) == 0 {
		return []db_models.Feedback{}, nil
	}

	var sidFilter *uuid.UUID
	if studentID != nil {
		sid, err := uuid.Parse(*studentID)
		if err != nil {
			return nil, utils.ErrInvalidID
		}
		sidFilter = &sid
	}

	feedbacks, err := s.feedbackRepo.ListByCourses(ctx, targetCourseIDs, sidFilter, rating)
	if err != nil {
		log.Printf("Error listing admin feedback: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return feedbacks, nil
}
