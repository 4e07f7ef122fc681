package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioku-backend/models"
)

// BlockService manages the admin-declared closed intervals that override
// availability regardless of bookings. Overlapping blocks are tolerated; the
// resolver treats any slot touched by at least one block as blocked.
type BlockService struct {
	db *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{db: db}
}

// List returns blocks, filtered to one date when given.
func (s *BlockService) List(date string) ([]models.AdminBlock, error) {
	var blocks []models.AdminBlock
	query := s.db.Order("block_date DESC, start_time ASC")
	if date != "" {
		query = query.Where("block_date = ?", date)
	}
	if err := query.Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (s *BlockService) Create(date, start, end, reason string) (*models.AdminBlock, error) {
	if date == "" || start == "" || end == "" {
		return nil, newValidationError("Please provide block_date, start_time, and end_time")
	}
	start = NormalizeClock(start)
	end = NormalizeClock(end)
	if start >= end {
		return nil, newValidationError("start_time must be before end_time")
	}
	if reason == "" {
		reason = "istirahat"
	}

	block := models.AdminBlock{
		BlockDate: date,
		StartTime: start,
		EndTime:   end,
		Reason:    reason,
	}
	if err := s.db.Create(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

// Delete removes a block. Blocks are immutable, so an admin edit is a delete
// followed by a recreate.
func (s *BlockService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.AdminBlock{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
