package controllers

import (
	"context"
	"net/http"

	"campusvoice/internal/models/request_models"
	"campusvoice/internal/services"
	"campusvoice/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BlockController struct {
	blockService services.BlockServiceInterface
}

func NewBlockController(blockService services.BlockServiceInterface) *BlockController {
	return &BlockController{blockService: blockService}
}

// BlockStudent godoc
// @Summary Block a student from the authenticated admin's courses
// @Tags Blocks
// @Accept json
// @Produce json
// @Param request body request_models.BlockStudentRequest true "Block payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/blocks [post]
func (bc *BlockController) BlockStudent(c *gin.Context) {
	var req request_models.BlockStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := bc.blockService.BlockStudent(context.Background(), c.GetString("user_id"), req.StudentID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Student blocked successfully")
}

// UnblockStudent godoc
// @Summary Unblock a student
// @Tags Blocks
// @Produce json
// @Param studentId path string true "Student id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/blocks/{studentId} [delete]
func (bc *BlockController) UnblockStudent(c *gin.Context) {
	if err := bc.blockService.UnblockStudent(context.Background(), c.GetString("user_id"), c.Param("studentId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Student unblocked successfully")
}
