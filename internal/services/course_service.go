package services

import (
	"context"
	"log"

	"campusvoice/internal/models/db_models"
	"campusvoice/internal/repositories"
	"campusvoice/pkg/utils"

	"github.com/google/uuid"
)

type CourseServiceInterface interface {
	CreateCourse(ctx context.Context, adminID, name string) (uuid.UUID, error)
	ListCourses(ctx context.Context, adminID string) ([]db_models.Course, error)
	RenameCourse(ctx context.Context, courseID, name string) (bool, error)
	DeleteCourse(ctx context.Context, courseID string) (bool, error)
}

type CourseService struct {
	courseRepo repositories.CourseRepository
}

func NewCourseService(courseRepo repositories.CourseRepository) CourseServiceInterface {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) CreateCourse(ctx context.Context, adminID, name string) (uuid.UUID, error) {
	aid, err := uuid.Parse(adminID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidID
	}

	course := &db_models.Course{Name: name, AdminID: aid}
	if err := s.courseRepo.Insert(ctx, course); err != nil {
		log.Printf("Error inserting course: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	return course.ID, nil
}

func (s *CourseService) ListCourses(ctx context.Context, adminID string) ([]db_models.Course, error) {
	aid, err := uuid.Parse(adminID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	courses, err := s.courseRepo.ListByAdmin(ctx, aid)
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return courses, nil
}

// RenameCourse reports found=false when the course does not exist; the caller
// decides the response code, this is not an error path.
func (s *CourseService) RenameCourse(ctx context.Context, courseID, name string) (bool, error) {
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return false, utils.ErrInvalidID
	}

	found, err := s.courseRepo.UpdateName(ctx, cid, name)
	if err != nil {
		log.Printf("Error renaming course: %v", err)
		return false, utils.ErrDatabaseError
	}
	return found, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, courseID string) (bool, error) {
	cid, err := uuid.Parse(courseID)
	if err != nil {
		return false, utils.ErrInvalidID
	}

	deleted, err := s.courseRepo.DeleteByID(ctx, cid)
	if err != nil {
		log.Printf("Error deleting course: %v", err)
		return false, utils.ErrDatabaseError
	}
	return deleted, nil
}
