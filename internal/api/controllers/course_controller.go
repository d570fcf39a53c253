package controllers

import (
	"context"
	"net/http"

	"campusvoice/internal/models/request_models"
	"campusvoice/internal/models/response_models"
	"campusvoice/internal/services"
	"campusvoice/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	courseService services.CourseServiceInterface
}

func NewCourseController(courseService services.CourseServiceInterface) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse godoc
// @Summary Create a course owned by the authenticated admin
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body request_models.CreateCourseRequest true "Course payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/courses [post]
func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req request_models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := cc.courseService.CreateCourse(context.Background(), c.GetString("user_id"), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Course created successfully")
}

// ListCourses godoc
// @Summary List courses owned by the authenticated admin
// @Tags Courses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/courses [get]
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.courseService.ListCourses(context.Background(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CoursesFromModels(courses), "Courses fetched successfully")
}

// RenameCourse godoc
// @Summary Rename a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course id"
// @Param request body request_models.RenameCourseRequest true "New name payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/courses/{id} [put]
func (cc *CourseController) RenameCourse(c *gin.Context) {
	var req request_models.RenameCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	found, err := cc.courseService.RenameCourse(context.Background(), c.Param("id"), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, "No course found with the given id")
		return
	}

	utils.RespondSuccess(c, nil, "Course renamed successfully")
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/courses/{id} [delete]
func (cc *CourseController) DeleteCourse(c *gin.Context) {
	deleted, err := cc.courseService.DeleteCourse(context.Background(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, "No course found with the given id")
		return
	}

	utils.RespondSuccess(c, nil, "Course deleted successfully")
}
