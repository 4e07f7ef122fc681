package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studioku-backend/services"
	"studioku-backend/utils"
)

type CreateBlockInput struct {
	BlockDate string `json:"block_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

type AdminBlockController struct {
	blocks *services.BlockService
}

func NewAdminBlockController(blocks *services.BlockService) *AdminBlockController {
	return &AdminBlockController{blocks: blocks}
}

// GetBlocks lists blocks, optionally filtered by ?date=YYYY-MM-DD.
// GET /api/admin/blocks — admin only.
func (ctl *AdminBlockController) GetBlocks(c *gin.Context) {
	date := c.Query("date")
	if date != "" && !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	blocks, err := ctl.blocks.List(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(blocks),
		"data":    blocks,
	})
}

// CreateBlock declares a closed interval on one date.
// POST /api/admin/blocks — admin only.
func (ctl *AdminBlockController) CreateBlock(c *gin.Context) {
	var input CreateBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please provide block_date, start_time, and end_time")
		return
	}

	if !utils.ValidateDate(input.BlockDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid block_date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateClock(input.StartTime) || !utils.ValidateClock(input.EndTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	block, err := ctl.blocks.Create(input.BlockDate, input.StartTime, input.EndTime, input.Reason)
	if err != nil {
		respondServiceError(c, err, "Block not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Block created successfully",
		"data":    block,
	})
}

// DeleteBlock removes a block.
// DELETE /api/admin/blocks/:id — admin only.
func (ctl *AdminBlockController) DeleteBlock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid block ID format")
		return
	}

	if err := ctl.blocks.Delete(id); err != nil {
		respondServiceError(c, err, "Block not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Block deleted successfully",
	})
}
