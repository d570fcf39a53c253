package services

import (
	"context"

	"campusvoice/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. Inserts mimic the store's unique indexes by
// returning gorm.ErrDuplicatedKey, which is what the translated driver error
// looks like to the services.

type fakeStudentRepo struct {
	students map[uuid.UUID]*db_models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uuid.UUID]*db_models.Student)}
}

func (f *fakeStudentRepo) Insert(_ context.Context, student *db_models.Student) error {
	for _, s := range f.students {
		if s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	cp := *student
	f.students[student.ID] = &cp
	return nil
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudentRepo) FindByEmail(_ context.Context, email string) (*db_models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) (bool, error) {
	s, ok := f.students[id]
	if !ok {
		return false, nil
	}
	for k, v := range fields {
		val := v.(string)
		switch k {
		case "password_hash":
			s.PasswordHash = val
		case "phone":
			s.Phone = val
		case "date_of_birth":
			s.DateOfBirth = val
		case "address":
			s.Address = val
		}
	}
	return true, nil
}

type fakeAdminRepo struct {
	admins map[uuid.UUID]*db_models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[uuid.UUID]*db_models.Admin)}
}

func (f *fakeAdminRepo) Insert(_ context.Context, admin *db_models.Admin) error {
	for _, a := range f.admins {
		if a.Email == admin.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	cp := *admin
	f.admins[admin.ID] = &cp
	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*db_models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeCourseRepo struct {
	courses map[uuid.UUID]*db_models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[uuid.UUID]*db_models.Course)}
}

func (f *fakeCourseRepo) Insert(_ context.Context, course *db_models.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	cp := *course
	f.courses[course.ID] = &cp
	return nil
}

func (f *fakeCourseRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseRepo) FindByIDAndAdmin(_ context.Context, id, adminID uuid.UUID) (*db_models.Course, error) {
	c, ok := f.courses[id]
	if !ok || c.AdminID != adminID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseRepo) ListByAdmin(_ context.Context, adminID uuid.UUID) ([]db_models.Course, error) {
	var out []db_models.Course
	for _, c := range f.courses {
		if c.AdminID == adminID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) ListIDsByAdmin(_ context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, c := range f.courses {
		if c.AdminID == adminID {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (f *fakeCourseRepo) UpdateName(_ context.Context, id uuid.UUID, name string) (bool, error) {
	c, ok := f.courses[id]
	if !ok {
		return false, nil
	}
	c.Name = name
	return true, nil
}

func (f *fakeCourseRepo) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.courses[id]; !ok {
		return false, nil
	}
	delete(f.courses, id)
	return true, nil
}

type blockPair struct {
	studentID uuid.UUID
	adminID   uuid.UUID
}

type fakeBlockRepo struct {
	blocks map[blockPair]bool
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{blocks: make(map[blockPair]bool)}
}

func (f *fakeBlockRepo) Insert(_ context.Context, block *db_models.BlockedUser) error {
	f.blocks[blockPair{block.StudentID, block.AdminID}] = true
	return nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, studentID, adminID uuid.UUID) (bool, error) {
	pair := blockPair{studentID, adminID}
	if !f.blocks[pair] {
		return false, nil
	}
	delete(f.blocks, pair)
	return true, nil
}

func (f *fakeBlockRepo) Exists(_ context.Context, studentID, adminID uuid.UUID) (bool, error) {
	return f.blocks[blockPair{studentID, adminID}], nil
}

type feedbackPair struct {
	studentID uuid.UUID
	courseID  uuid.UUID
}

type fakeFeedbackRepo struct {
	feedbacks map[uuid.UUID]*db_models.Feedback
	pairs     map[feedbackPair]bool
	listCalls int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{
		feedbacks: make(map[uuid.UUID]*db_models.Feedback),
		pairs:     make(map[feedbackPair]bool),
	}
}

func (f *fakeFeedbackRepo) Insert(_ context.Context, feedback *db_models.Feedback) error {
	pair := feedbackPair{feedback.StudentID, feedback.CourseID}
	if f.pairs[pair] {
		return gorm.ErrDuplicatedKey
	}
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	cp := *feedback
	f.feedbacks[feedback.ID] = &cp
	f.pairs[pair] = true
	return nil
}

func (f *fakeFeedbackRepo) Update(_ context.Context, id uuid.UUID, rating int, comment string) (bool, error) {
	fb, ok := f.feedbacks[id]
	if !ok {
		return false, nil
	}
	fb.Rating = rating
	fb.Comment = comment
	return true, nil
}

func (f *fakeFeedbackRepo) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	fb, ok := f.feedbacks[id]
	if !ok {
		return false, nil
	}
	delete(f.pairs, feedbackPair{fb.StudentID, fb.CourseID})
	delete(f.feedbacks, id)
	return true, nil
}

func (f *fakeFeedbackRepo) ListByStudent(_ context.Context, studentID uuid.UUID, rating *int) ([]db_models.Feedback, error) {
	f.listCalls++
	var out []db_models.Feedback
	for _, fb := range f.feedbacks {
		if fb.StudentID != studentID {
			continue
		}
		if rating != nil && fb.Rating != *rating {
			continue
		}
		out = append(out, *fb)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) ListByCourses(_ context.Context, courseIDs []uuid.UUID, studentID *uuid.UUID, rating *int) ([]db_models.Feedback, error) {
	f.listCalls++
	allowed := make(map[uuid.UUID]bool, len(courseIDs))
	for _, id := range courseIDs {
		allowed[id] = true
	}

	var out []db_models.Feedback
	for _, fb := range f.feedbacks {
		if !allowed[fb.CourseID] {
			continue
		}
		if studentID != nil && fb.StudentID != *studentID {
			continue
		}
		if rating != nil && fb.Rating != *rating {
			continue
		}
		out = append(out, *fb)
	}
	return out, nil
}

type fakeMailService struct {
	sentTo    []string
	sentToken string
}

func (f *fakeMailService) SendPasswordResetEmail(to, token string) error {
	f.sentTo = append(f.sentTo, to)
	f.sentToken = token
	return nil
}
