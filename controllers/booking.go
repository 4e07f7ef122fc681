package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studioku-backend/services"
	"studioku-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for a customer booking
type CreateBookingInput struct {
	CustomerName     string     `json:"customer_name" binding:"required"`
	CustomerEmail    string     `json:"customer_email" binding:"required,email"`
	CustomerPhone    string     `json:"customer_phone" binding:"required"`
	BookingDate      string     `json:"booking_date" binding:"required"`
	TimeSlot         string     `json:"time_slot" binding:"required"`
	SelectedPackage  string     `json:"selected_package" binding:"required"`
	ServiceID        *uuid.UUID `json:"service_id"`
	AdditionalPerson int        `json:"additional_person" binding:"min=0"`
	BackgroundChoice string     `json:"background_choice"`
	PaymentMethod    string     `json:"payment_method" binding:"required"`
	TotalPrice       float64    `json:"total_price" binding:"required,min=0"`
	Notes            string     `json:"notes"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreateBooking admits a customer submission.
// POST /api/bookings — public.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	if !utils.ValidateDate(input.BookingDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking_date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateClock(input.TimeSlot) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time_slot, expected HH:MM")
		return
	}
	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer_phone")
		return
	}

	booking, err := ctl.bookings.Submit(services.BookingDraft{
		CustomerName:     input.CustomerName,
		CustomerEmail:    input.CustomerEmail,
		CustomerPhone:    input.CustomerPhone,
		BookingDate:      input.BookingDate,
		TimeSlot:         input.TimeSlot,
		SelectedPackage:  input.SelectedPackage,
		ServiceID:        input.ServiceID,
		AdditionalPerson: input.AdditionalPerson,
		BackgroundChoice: input.BackgroundChoice,
		PaymentMethod:    input.PaymentMethod,
		TotalPrice:       input.TotalPrice,
		Notes:            input.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    booking,
	})
}

// GetBookings lists every booking, newest first.
// GET /api/bookings — admin only.
func (ctl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctl.bookings.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

// GetBooking returns one booking by id.
// GET /api/bookings/:id — admin only.
func (ctl *BookingController) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := ctl.bookings.Get(id)
	if err != nil {
		respondServiceError(c, err, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
	})
}

// UpdateBookingStatus moves a booking between pending, confirmed, cancelled.
// PUT /api/bookings/:id — admin only.
func (ctl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please provide a status")
		return
	}

	booking, err := ctl.bookings.UpdateStatus(id, input.Status)
	if err != nil {
		respondServiceError(c, err, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated successfully",
		"data":    booking,
	})
}

// DeleteBooking hard-deletes a booking.
// DELETE /api/bookings/:id — admin only.
func (ctl *BookingController) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := ctl.bookings.Delete(id); err != nil {
		respondServiceError(c, err, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted successfully",
	})
}
