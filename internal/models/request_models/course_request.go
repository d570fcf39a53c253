package request_models

type CreateCourseRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type RenameCourseRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
