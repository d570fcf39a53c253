package response_models

import "campusvoice/internal/models/db_models"

type FeedbackResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FeedbackFromModel(f db_models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID.String(),
		StudentID: f.StudentID.String(),
		CourseID:  f.CourseID.String(),
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func FeedbacksFromModels(feedbacks []db_models.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		out = append(out, FeedbackFromModel(f))
	}
	return out
}
