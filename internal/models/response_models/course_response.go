package response_models

import "campusvoice/internal/models/db_models"

type CourseResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	AdminID string `json:"admin_id"`
}

func CourseFromModel(c db_models.Course) CourseResponse {
	return CourseResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		AdminID: c.AdminID.String(),
	}
}

func CoursesFromModels(courses []db_models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseFromModel(c))
	}
	return out
}
