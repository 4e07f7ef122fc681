package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gallery is a published studio photo. The binary lives in external storage;
// only the URL and caption are kept here.
type Gallery struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ImageURL string    `gorm:"not null" json:"image_url"`
	Caption  string    `json:"caption"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Gallery) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
