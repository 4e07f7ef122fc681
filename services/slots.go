package services

import (
	"fmt"
	"strings"

	"studioku-backend/models"
)

// Operating window, minutes since midnight. Both ends are bookable.
const (
	openingMinute = 9 * 60  // 09:00
	closingMinute = 20 * 60 // 20:00
)

// GenerateTimeSlots derives the bookable grid for a package: 15-minute steps
// for photobox, 30 for everything else, unless the referenced service defines
// its own duration, which then becomes the step. The closing slot at 20:00 is
// always appended exactly once, even when the step does not land on it.
func GenerateTimeSlots(packageSlug string, service *models.Service) []string {
	interval := 30
	if strings.EqualFold(packageSlug, "photobox") {
		interval = 15
	}
	if service != nil && service.Duration > 0 {
		interval = service.Duration
	}

	var slots []string
	for minute := openingMinute; minute < closingMinute; minute += interval {
		slots = append(slots, fmt.Sprintf("%02d:%02d", minute/60, minute%60))
	}
	slots = append(slots, "20:00")

	return slots
}

// NormalizeClock trims a TIME value down to HH:MM. Seconds coming from
// upstream storage are truncated, never rounded.
func NormalizeClock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
