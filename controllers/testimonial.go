package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioku-backend/config"
	"studioku-backend/models"
	"studioku-backend/utils"
)

type CreateTestimonialInput struct {
	Name    string `json:"name" binding:"required"`
	Message string `json:"message" binding:"required"`
	Rating  int    `json:"rating" binding:"min=1,max=5"`
}

type UpdateTestimonialInput struct {
	Name    *string `json:"name"`
	Message *string `json:"message"`
	Rating  *int    `json:"rating"`
}

// GetTestimonials lists testimonials, newest first
func GetTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := config.DB.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(testimonials),
		"data":    testimonials,
	})
}

// GetTestimonial retrieves a single testimonial by ID
func GetTestimonial(c *gin.Context) {
	testimonialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	var testimonial models.Testimonial
	if err := config.DB.First(&testimonial, "id = ?", testimonialUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": testimonial})
}

// CreateTestimonial publishes a testimonial
func CreateTestimonial(c *gin.Context) {
	var input CreateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Rating == 0 {
		input.Rating = 5
	}

	testimonial := models.Testimonial{
		Name:    input.Name,
		Message: input.Message,
		Rating:  input.Rating,
	}
	if err := config.DB.Create(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Testimonial created successfully",
		"data":    testimonial,
	})
}

// UpdateTestimonial edits a testimonial
func UpdateTestimonial(c *gin.Context) {
	testimonialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	var input UpdateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var testimonial models.Testimonial
	if err := config.DB.First(&testimonial, "id = ?", testimonialUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		testimonial.Name = *input.Name
	}
	if input.Message != nil {
		testimonial.Message = *input.Message
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			utils.RespondWithError(c, http.StatusBadRequest, "rating must be between 1 and 5")
			return
		}
		testimonial.Rating = *input.Rating
	}

	if err := config.DB.Save(&testimonial).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial updated successfully",
		"data":    testimonial,
	})
}

// DeleteTestimonial removes a testimonial
func DeleteTestimonial(c *gin.Context) {
	testimonialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	result := config.DB.Where("id = ?", testimonialUUID).Delete(&models.Testimonial{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial deleted successfully",
	})
}
