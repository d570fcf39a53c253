package controllers

import (
	"context"
	"net/http"
	"strconv"

	"campusvoice/internal/models/request_models"
	"campusvoice/internal/models/response_models"
	"campusvoice/internal/services"
	"campusvoice/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary Submit feedback for a course
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.SubmitFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [post]
func (fc *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := fc.feedbackService.SubmitFeedback(context.Background(), c.GetString("user_id"), req.CourseID, req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Feedback submitted successfully")
}

// EditFeedback godoc
// @Summary Edit previously submitted feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback id"
// @Param request body request_models.EditFeedbackRequest true "Updated feedback payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/{id} [put]
func (fc *FeedbackController) EditFeedback(c *gin.Context) {
	var req request_models.EditFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	found, err := fc.feedbackService.EditFeedback(context.Background(), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, "No feedback found with the given id")
		return
	}

	utils.RespondSuccess(c, nil, "Feedback updated successfully")
}

// DeleteFeedback godoc
// @Summary Delete previously submitted feedback
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/{id} [delete]
func (fc *FeedbackController) DeleteFeedback(c *gin.Context) {
	deleted, err := fc.feedbackService.DeleteFeedback(context.Background(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, "No feedback found with the given id")
		return
	}

	utils.RespondSuccess(c, nil, "Feedback deleted successfully")
}

// ListMyFeedback godoc
// @Summary List the authenticated student's feedback
// @Tags Feedback
// @Produce json
// @Param rating query int false "Filter by rating (1-5)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/mine [get]
func (fc *FeedbackController) ListMyFeedback(c *gin.Context) {
	rating, ok := ratingFilter(c)
	if !ok {
		return
	}

	feedbacks, err := fc.feedbackService.ListForStudent(context.Background(), c.GetString("user_id"), rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FeedbacksFromModels(feedbacks), "Feedback fetched successfully")
}

// ListAdminFeedback godoc
// @Summary List feedback across the authenticated admin's courses
// @Tags Feedback
// @Produce json
// @Param course_id query string false "Restrict to one owned course"
// @Param student_id query string false "Filter by student"
// @Param rating query int false "Filter by rating (1-5)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/feedback [get]
func (fc *FeedbackController) ListAdminFeedback(c *gin.Context) {
	rating, ok := ratingFilter(c)
	if !ok {
		return
	}

	var courseID, studentID *string
	if v := c.Query("course_id"); v != "" {
		courseID = &v
	}
	if v := c.Query("student_id"); v != "" {
		studentID = &v
	}

	feedbacks, err := fc.feedbackService.ListForAdmin(context.Background(), c.GetString("user_id"), courseID, studentID, rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FeedbacksFromModels(feedbacks), "Feedback fetched successfully")
}

func ratingFilter(c *gin.Context) (*int, bool) {
	v := c.Query("rating")
	if v == "" {
		return nil, true
	}
	rating, err := strconv.Atoi(v)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Rating filter must be a number")
		return nil, false
	}
	return &rating, true
}
