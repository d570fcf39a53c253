package request_models

type SubmitFeedbackRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type EditFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
