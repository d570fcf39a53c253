package request_models

type BlockStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
}
