package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PricingPerSession = "per_session"
	PricingPerPerson  = "per_person"
)

// Service is a bookable studio offering (the "layanan" catalog).
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int       `json:"duration"` // minutes; doubles as the slot step when set
	MaxPerson   int       `json:"max_person"`
	MinPerson   int       `json:"min_person"`
	PricingType string    `gorm:"type:varchar(20);not null;default:'per_session'" json:"pricing_type"`

	Bookings []Booking `gorm:"foreignKey:ServiceID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
