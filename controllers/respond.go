package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studioku-backend/services"
	"studioku-backend/utils"
)

// respondServiceError maps the service-layer error taxonomy onto HTTP codes.
// notFoundMsg names the missing resource for 404 responses.
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	var validationErr *services.ValidationError
	var priceErr *services.PriceMismatchError

	switch {
	case errors.Is(err, services.ErrSlotTaken):
		utils.RespondWithError(c, http.StatusBadRequest, "This time slot is already booked")
	case errors.As(err, &priceErr):
		utils.RespondWithError(c, http.StatusBadRequest, priceErr.Error())
	case errors.As(err, &validationErr):
		utils.RespondWithError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, notFoundMsg)
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
	}
}
