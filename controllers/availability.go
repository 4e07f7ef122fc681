package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studioku-backend/services"
	"studioku-backend/utils"
)

type AvailabilityController struct {
	availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{availability: availability}
}

// GetAvailability returns the per-slot status for one date and package.
// GET /api/availability/:date/:package — public. An optional service_id query
// parameter resolves against a defined service instead of the generic slug.
func (ctl *AvailabilityController) GetAvailability(c *gin.Context) {
	date := c.Param("date")
	packageSlug := c.Param("package")

	if !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var serviceID *uuid.UUID
	if raw := c.Query("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service_id format")
			return
		}
		serviceID = &id
	}

	slots, err := ctl.availability.Resolve(date, packageSlug, serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    date,
		"package": packageSlug,
		"slots":   slots,
	})
}
