package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps the service error taxonomy to transport codes. The
// facade never picks status codes itself; this is the single place that does.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrEmptyComment),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrInvalidDate):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrDuplicateFeedback):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrStudentNotFound),
		errors.Is(err, ErrAdminNotFound),
		errors.Is(err, ErrCourseNotFound),
		errors.Is(err, ErrFeedbackNotFound),
		errors.Is(err, ErrBlockNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrIncorrectPassword),
		errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrStudentBlocked):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
