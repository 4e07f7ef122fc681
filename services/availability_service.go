package services

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioku-backend/models"
)

const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	SlotBlocked   = "blocked"
)

// SlotStatus is one entry of an availability response.
type SlotStatus struct {
	Time   string  `json:"time"`
	Status string  `json:"status"`
	Reason *string `json:"reason"`
}

// AvailabilityService merges the slot grid, admin blocks, and active bookings
// into a per-slot status for one (date, package) query.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Resolve builds the availability for a date and package. Missing data is not
// an error: a date with no blocks and no bookings yields the full grid as
// available. Only storage failures propagate.
func (s *AvailabilityService) Resolve(date, packageSlug string, serviceID *uuid.UUID) ([]SlotStatus, error) {
	identity := NewPackageIdentity(packageSlug, serviceID)

	// An unknown service_id is not an error here (the resolver never fails on
	// missing data): the grid falls back to the slug's default step while the
	// identity still compares by the id, which can match no booking.
	var service *models.Service
	if identity.ServiceID != nil {
		var svc models.Service
		err := s.db.First(&svc, "id = ?", *identity.ServiceID).Error
		if err == nil {
			service = &svc
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	grid := GenerateTimeSlots(packageSlug, service)

	var blocks []models.AdminBlock
	if err := s.db.Where("block_date = ?", date).Find(&blocks).Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := s.db.Where("booking_date = ? AND status <> ?", date, models.BookingCancelled).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	// Union of grid times, block starts, and matching booking times, so an
	// out-of-grid legacy booking or block still surfaces in the response.
	times := make([]string, 0, len(grid)+len(blocks)+len(bookings))
	seen := make(map[string]bool)
	add := func(t string) {
		t = NormalizeClock(t)
		if t != "" && !seen[t] {
			seen[t] = true
			times = append(times, t)
		}
	}
	for _, t := range grid {
		add(t)
	}
	for i := range blocks {
		add(blocks[i].StartTime)
	}

	booked := make(map[string]bool)
	for i := range bookings {
		if identity.Matches(&bookings[i]) {
			t := NormalizeClock(bookings[i].TimeSlot)
			booked[t] = true
			add(t)
		}
	}

	// HH:MM is zero-padded, so lexicographic order is chronological.
	sort.Strings(times)

	slots := make([]SlotStatus, 0, len(times))
	for _, t := range times {
		// A booking at a blocked time still reports booked; admission already
		// cleared the block check when it was taken.
		if booked[t] {
			slots = append(slots, SlotStatus{Time: t, Status: SlotBooked})
			continue
		}
		if reason, ok := blockReason(blocks, t); ok {
			slots = append(slots, SlotStatus{Time: t, Status: SlotBlocked, Reason: &reason})
			continue
		}
		slots = append(slots, SlotStatus{Time: t, Status: SlotAvailable})
	}
	return slots, nil
}

// blockReason returns the reason of the first block whose inclusive
// [start_time, end_time] interval contains t.
func blockReason(blocks []models.AdminBlock, t string) (string, bool) {
	for i := range blocks {
		if t >= NormalizeClock(blocks[i].StartTime) && t <= NormalizeClock(blocks[i].EndTime) {
			return blocks[i].Reason, true
		}
	}
	return "", false
}
