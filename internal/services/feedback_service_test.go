package services

import (
	"context"
	"errors"
	"testing"

	"campusvoice/internal/models/db_models"
	"campusvoice/pkg/utils"

	"github.com/google/uuid"
)

type feedbackFixture struct {
	svc          FeedbackServiceInterface
	feedbackRepo *fakeFeedbackRepo
	courseRepo   *fakeCourseRepo
	blockRepo    *fakeBlockRepo
}

func newFeedbackFixture() *feedbackFixture {
	feedbackRepo := newFakeFeedbackRepo()
	courseRepo := newFakeCourseRepo()
	blockRepo := newFakeBlockRepo()
	return &feedbackFixture{
		svc:          NewFeedbackService(feedbackRepo, courseRepo, blockRepo),
		feedbackRepo: feedbackRepo,
		courseRepo:   courseRepo,
		blockRepo:    blockRepo,
	}
}

func (f *feedbackFixture) addCourse(t *testing.T, adminID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	course := &db_models.Course{Name: name, AdminID: adminID}
	if err := f.courseRepo.Insert(context.Background(), course); err != nil {
		t.Fatalf("seeding course: %v", err)
	}
	return course.ID
}

func TestSubmitFeedback(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	adminID := uuid.New()
	studentID := uuid.New()
	blockedStudentID := uuid.New()
	courseID := fix.addCourse(t, adminID, "Math")
	fix.blockRepo.blocks[blockPair{blockedStudentID, adminID}] = true

	tests := []struct {
		name      string
		studentID string
		courseID  string
		rating    int
		comment   string
		wantErr   error
	}{
		{name: "malformed student id", studentID: "68c5abcd", courseID: courseID.String(), rating: 4, comment: "ok", wantErr: utils.ErrInvalidID},
		{name: "malformed course id", studentID: studentID.String(), courseID: "oops", rating: 4, comment: "ok", wantErr: utils.ErrInvalidID},
		{name: "course missing", studentID: studentID.String(), courseID: uuid.NewString(), rating: 4, comment: "ok", wantErr: utils.ErrCourseNotFound},
		{name: "blocked on first submission", studentID: blockedStudentID.String(), courseID: courseID.String(), rating: 5, comment: "x", wantErr: utils.ErrStudentBlocked},
		{name: "rating too low", studentID: studentID.String(), courseID: courseID.String(), rating: 0, comment: "ok", wantErr: utils.ErrInvalidRating},
		{name: "rating too high", studentID: studentID.String(), courseID: courseID.String(), rating: 6, comment: "ok", wantErr: utils.ErrInvalidRating},
		{name: "whitespace comment", studentID: studentID.String(), courseID: courseID.String(), rating: 4, comment: "   ", wantErr: utils.ErrEmptyComment},
		{name: "ok", studentID: studentID.String(), courseID: courseID.String(), rating: 4, comment: "Great course"},
		{name: "duplicate pair", studentID: studentID.String(), courseID: courseID.String(), rating: 5, comment: "again", wantErr: utils.ErrDuplicateFeedback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fix.svc.SubmitFeedback(ctx, tt.studentID, tt.courseID, tt.rating, tt.comment)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SubmitFeedback() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmitFeedbackBlockWinsOverDuplicate(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	adminID := uuid.New()
	studentID := uuid.New()
	courseID := fix.addCourse(t, adminID, "Science")

	if _, err := fix.svc.SubmitFeedback(ctx, studentID.String(), courseID.String(), 3, "fine"); err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	fix.blockRepo.blocks[blockPair{studentID, adminID}] = true

	// a blocked student gets Forbidden even where a duplicate would also apply
	if _, err := fix.svc.SubmitFeedback(ctx, studentID.String(), courseID.String(), 4, "retry"); !errors.Is(err, utils.ErrStudentBlocked) {
		t.Errorf("SubmitFeedback() error = %v, want ErrStudentBlocked", err)
	}
}

func TestEditFeedbackRoundTrip(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	adminID := uuid.New()
	studentID := uuid.New()
	courseID := fix.addCourse(t, adminID, "Math")

	id, err := fix.svc.SubmitFeedback(ctx, studentID.String(), courseID.String(), 4, "ok")
	if err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}

	found, err := fix.svc.EditFeedback(ctx, id.String(), 2, "bad")
	if err != nil || !found {
		t.Fatalf("EditFeedback() = (%v, %v), want (true, nil)", found, err)
	}

	feedbacks, err := fix.svc.ListForStudent(ctx, studentID.String(), nil)
	if err != nil {
		t.Fatalf("ListForStudent() error = %v", err)
	}
	if len(feedbacks) != 1 {
		t.Fatalf("ListForStudent() returned %d entries, want 1", len(feedbacks))
	}
	if feedbacks[0].Rating != 2 || feedbacks[0].Comment != "bad" {
		t.Errorf("stored feedback = (%d, %q), want the edited values (2, \"bad\")", feedbacks[0].Rating, feedbacks[0].Comment)
	}
}

func TestEditFeedbackValidationAndMissing(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	if _, err := fix.svc.EditFeedback(ctx, "garbage", 3, "x"); !errors.Is(err, utils.ErrInvalidID) {
		t.Errorf("EditFeedback() malformed id error = %v, want ErrInvalidID", err)
	}
	if _, err := fix.svc.EditFeedback(ctx, uuid.NewString(), 9, "x"); !errors.Is(err, utils.ErrInvalidRating) {
		t.Errorf("EditFeedback() bad rating error = %v, want ErrInvalidRating", err)
	}

	found, err := fix.svc.EditFeedback(ctx, uuid.NewString(), 3, "x")
	if err != nil {
		t.Fatalf("EditFeedback() error = %v", err)
	}
	if found {
		t.Error("EditFeedback() reported found for a missing id")
	}
}

func TestDeleteFeedback(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	adminID := uuid.New()
	studentID := uuid.New()
	courseID := fix.addCourse(t, adminID, "Math")

	id, err := fix.svc.SubmitFeedback(ctx, studentID.String(), courseID.String(), 4, "ok")
	if err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}

	deleted, err := fix.svc.DeleteFeedback(ctx, id.String())
	if err != nil || !deleted {
		t.Fatalf("DeleteFeedback() = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = fix.svc.DeleteFeedback(ctx, id.String())
	if err != nil {
		t.Fatalf("DeleteFeedback() second call error = %v", err)
	}
	if deleted {
		t.Error("DeleteFeedback() reported deleted for an already removed id")
	}

	// after deletion the pair is free again
	if _, err := fix.svc.SubmitFeedback(ctx, studentID.String(), courseID.String(), 5, "second try"); err != nil {
		t.Errorf("SubmitFeedback() after delete error = %v", err)
	}
}

func TestListForAdminScoping(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	adminA := uuid.New()
	adminB := uuid.New()
	student := uuid.New()
	c1 := fix.addCourse(t, adminA, "C1")
	fix.addCourse(t, adminA, "C2")
	c3 := fix.addCourse(t, adminB, "C3")

	if _, err := fix.svc.SubmitFeedback(ctx, student.String(), c1.String(), 4, "on C1"); err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	if _, err := fix.svc.SubmitFeedback(ctx, student.String(), c3.String(), 5, "on C3"); err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}

	feedbacks, err := fix.svc.ListForAdmin(ctx, adminA.String(), nil, nil, nil)
	if err != nil {
		t.Fatalf("ListForAdmin() error = %v", err)
	}
	if len(feedbacks) != 1 || feedbacks[0].CourseID != c1 {
		t.Errorf("admin A sees %d entries, want exactly the C1 feedback", len(feedbacks))
	}

	// filtering by a course owned by someone else yields nothing
	c3Str := c3.String()
	feedbacks, err = fix.svc.ListForAdmin(ctx, adminA.String(), &c3Str, nil, nil)
	if err != nil {
		t.Fatalf("ListForAdmin() with foreign course error = %v", err)
	}
	if len(feedbacks) != 0 {
		t.Errorf("admin A sees %d entries through admin B's course, want 0", len(feedbacks))
	}
}

func TestListForAdminEmptyCourseSetShortCircuits(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	feedbacks, err := fix.svc.ListForAdmin(ctx, uuid.NewString(), nil, nil, nil)
	if err != nil {
		t.Fatalf("ListForAdmin() error = %v", err)
	}
	if len(feedbacks) != 0 {
		t.Errorf("got %d entries for an admin without courses, want 0", len(feedbacks))
	}
	if fix.feedbackRepo.listCalls != 0 {
		t.Errorf("feedback store queried %d times despite empty course set", fix.feedbackRepo.listCalls)
	}
}

func TestListFilters(t *testing.T) {
	fix := newFeedbackFixture()
	ctx := context.Background()

	admin := uuid.New()
	s1 := uuid.New()
	s2 := uuid.New()
	course := fix.addCourse(t, admin, "Dsa")

	if _, err := fix.svc.SubmitFeedback(ctx, s1.String(), course.String(), 5, "great"); err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	if _, err := fix.svc.SubmitFeedback(ctx, s2.String(), course.String(), 2, "meh"); err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}

	rating := 5
	feedbacks, err := fix.svc.ListForAdmin(ctx, admin.String(), nil, nil, &rating)
	if err != nil {
		t.Fatalf("ListForAdmin() rating filter error = %v", err)
	}
	if len(feedbacks) != 1 || feedbacks[0].Rating != 5 {
		t.Errorf("rating filter returned %d entries, want the single 5-star one", len(feedbacks))
	}

	s2Str := s2.String()
	feedbacks, err = fix.svc.ListForAdmin(ctx, admin.String(), nil, &s2Str, nil)
	if err != nil {
		t.Fatalf("ListForAdmin() student filter error = %v", err)
	}
	if len(feedbacks) != 1 || feedbacks[0].StudentID != s2 {
		t.Errorf("student filter returned %d entries, want s2's only", len(feedbacks))
	}

	feedbacks, err = fix.svc.ListForStudent(ctx, s1.String(), &rating)
	if err != nil {
		t.Fatalf("ListForStudent() error = %v", err)
	}
	if len(feedbacks) != 1 {
		t.Errorf("student listing returned %d entries, want 1", len(feedbacks))
	}
}
