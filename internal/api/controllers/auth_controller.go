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

type AuthController struct {
	identityService services.IdentityServiceInterface
}

func NewAuthController(identityService services.IdentityServiceInterface) *AuthController {
	return &AuthController{
		identityService: identityService,
	}
}

// RegisterStudent godoc
// @Summary Register a new student account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Student registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /students/signup [post]
func (a *AuthController) RegisterStudent(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := a.identityService.RegisterStudent(context.Background(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SignUpResponse{ID: id.String()}, "Student account created successfully")
}

// RegisterAdmin godoc
// @Summary Register a new admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Admin registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admins/signup [post]
func (a *AuthController) RegisterAdmin(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := a.identityService.RegisterAdmin(context.Background(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SignUpResponse{ID: id.String()}, "Admin account created successfully")
}

// LoginStudent godoc
// @Summary Login as a student
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /students/login [post]
func (a *AuthController) LoginStudent(c *gin.Context) {
	a.login(c, utils.RoleStudent)
}

// LoginAdmin godoc
// @Summary Login as an admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admins/login [post]
func (a *AuthController) LoginAdmin(c *gin.Context) {
	a.login(c, utils.RoleAdmin)
}

func (a *AuthController) login(c *gin.Context, role string) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.identityService.Login(context.Background(), req, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Login successful")
}

// ChangePassword godoc
// @Summary Change the authenticated student's password
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /students/me/password [put]
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := a.identityService.ChangePassword(context.Background(), c.GetString("user_id"), req.OldPassword, req.NewPassword)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}

// SetPhone godoc
// @Summary Update the authenticated student's phone number
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePhoneRequest true "Phone payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /students/me/phone [put]
func (a *AuthController) SetPhone(c *gin.Context) {
	var req request_models.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.identityService.SetPhone(context.Background(), c.GetString("user_id"), req.Phone); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Phone number updated successfully")
}

// SetDateOfBirth godoc
// @Summary Update the authenticated student's date of birth
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpdateDateOfBirthRequest true "Date of birth payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /students/me/date-of-birth [put]
func (a *AuthController) SetDateOfBirth(c *gin.Context) {
	var req request_models.UpdateDateOfBirthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.identityService.SetDateOfBirth(context.Background(), c.GetString("user_id"), req.DateOfBirth); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Date of birth updated successfully")
}

// SetAddress godoc
// @Summary Update the authenticated student's address
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpdateAddressRequest true "Address payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /students/me/address [put]
func (a *AuthController) SetAddress(c *gin.Context) {
	var req request_models.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.identityService.SetAddress(context.Background(), c.GetString("user_id"), req.Address); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Address updated successfully")
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a reset link to the provided email if it exists
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Forgot password payload"
// @Success 200 {object} utils.APIResponse
// @Router /password/forgot [post]
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.identityService.ForgotPassword(context.Background(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Reset password with a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordRequest true "Password reset payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /password/reset [post]
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.identityService.ResetPassword(context.Background(), req.Token, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}
