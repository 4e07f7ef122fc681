package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

const (
	PaymentCash = "cash"
	PaymentQris = "qris"
)

// ValidBookingStatus reports whether s is one of the allowed booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking is a customer reservation for one slot on one date.
// Cancelled bookings are kept for record-keeping but do not occupy the slot.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerEmail string `gorm:"not null" json:"customer_email"`
	CustomerPhone string `gorm:"not null" json:"customer_phone"`

	BookingDate string `gorm:"type:varchar(10);not null;index" json:"booking_date"` // YYYY-MM-DD
	TimeSlot    string `gorm:"type:varchar(5);not null" json:"time_slot"`           // HH:MM

	SelectedPackage  string     `gorm:"type:varchar(50);not null" json:"selected_package"`
	ServiceID        *uuid.UUID `gorm:"type:uuid;index" json:"service_id"`
	AdditionalPerson int        `gorm:"default:0" json:"additional_person"`
	BackgroundChoice string     `json:"background_choice"`
	PaymentMethod    string     `gorm:"type:varchar(20);not null" json:"payment_method"` // cash, qris
	TotalPrice       float64    `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status           string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes            string     `gorm:"type:text" json:"notes"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
