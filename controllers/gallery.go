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

// Image binaries live in external storage; the gallery keeps URLs only.
type CreateGalleryInput struct {
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
}

type UpdateGalleryInput struct {
	ImageURL *string `json:"image_url"`
	Caption  *string `json:"caption"`
}

// GetGalleries lists published photos, newest first
func GetGalleries(c *gin.Context) {
	var gallery []models.Gallery
	if err := config.DB.Order("created_at DESC").Find(&gallery).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(gallery),
		"data":    gallery,
	})
}

// GetGallery retrieves a single photo by ID
func GetGallery(c *gin.Context) {
	galleryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid gallery ID format")
		return
	}

	var gallery models.Gallery
	if err := config.DB.First(&gallery, "id = ?", galleryUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Gallery not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gallery})
}

// CreateGallery publishes a photo
func CreateGallery(c *gin.Context) {
	var input CreateGalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please provide an image_url")
		return
	}

	gallery := models.Gallery{
		ImageURL: input.ImageURL,
		Caption:  input.Caption,
	}
	if err := config.DB.Create(&gallery).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create gallery")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Gallery created successfully",
		"data":    gallery,
	})
}

// UpdateGallery edits a photo's URL or caption
func UpdateGallery(c *gin.Context) {
	galleryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid gallery ID format")
		return
	}

	var input UpdateGalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var gallery models.Gallery
	if err := config.DB.First(&gallery, "id = ?", galleryUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Gallery not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ImageURL != nil {
		gallery.ImageURL = *input.ImageURL
	}
	if input.Caption != nil {
		gallery.Caption = *input.Caption
	}

	if err := config.DB.Save(&gallery).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update gallery")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery updated successfully",
		"data":    gallery,
	})
}

// DeleteGallery removes a photo
func DeleteGallery(c *gin.Context) {
	galleryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid gallery ID format")
		return
	}

	result := config.DB.Where("id = ?", galleryUUID).Delete(&models.Gallery{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete gallery")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Gallery not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery deleted successfully",
	})
}
