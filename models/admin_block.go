package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminBlock closes an interval on one calendar date for every package.
// Blocks are immutable; an edit is a delete plus a recreate.
type AdminBlock struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BlockDate string    `gorm:"type:varchar(10);not null;index" json:"block_date"` // YYYY-MM-DD
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`        // HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`          // HH:MM
	Reason    string    `gorm:"default:'istirahat'" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *AdminBlock) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
