package services

import (
	"reflect"
	"testing"

	"studioku-backend/models"
)

func TestGenerateTimeSlots_CoupleGrid(t *testing.T) {
	slots := GenerateTimeSlots("couple", nil)

	if len(slots) != 23 {
		t.Fatalf("expected 23 slots for a 30-minute grid, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[1] != "09:30" {
		t.Fatalf("expected second slot 09:30, got %s", slots[1])
	}
	if slots[len(slots)-1] != "20:00" {
		t.Fatalf("expected last slot 20:00, got %s", slots[len(slots)-1])
	}
}

func TestGenerateTimeSlots_PhotoboxUses15MinuteStep(t *testing.T) {
	slots := GenerateTimeSlots("photobox", nil)

	// 44 quarter-hour slots before closing, plus the 20:00 anchor.
	if len(slots) != 45 {
		t.Fatalf("expected 45 slots for a 15-minute grid, got %d", len(slots))
	}
	if slots[1] != "09:15" {
		t.Fatalf("expected second slot 09:15, got %s", slots[1])
	}
	if slots[len(slots)-1] != "20:00" {
		t.Fatalf("expected last slot 20:00, got %s", slots[len(slots)-1])
	}
}

func TestGenerateTimeSlots_ServiceDurationOverridesStep(t *testing.T) {
	service := &models.Service{Duration: 45}
	slots := GenerateTimeSlots("couple", service)

	if slots[1] != "09:45" {
		t.Fatalf("expected second slot 09:45, got %s", slots[1])
	}
	// 45 does not divide the 11-hour window evenly: the closing slot is still
	// anchored at 20:00, exactly once.
	if slots[len(slots)-1] != "20:00" {
		t.Fatalf("expected last slot 20:00, got %s", slots[len(slots)-1])
	}
	if slots[len(slots)-2] == "20:00" {
		t.Fatalf("20:00 must appear exactly once")
	}
	if slots[len(slots)-2] != "19:45" {
		t.Fatalf("expected 19:45 before the anchor, got %s", slots[len(slots)-2])
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	first := GenerateTimeSlots("group", nil)
	second := GenerateTimeSlots("group", nil)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical sequences, got %v and %v", first, second)
	}
}

func TestNormalizeClock_TruncatesSeconds(t *testing.T) {
	if got := NormalizeClock("13:07:59"); got != "13:07" {
		t.Fatalf("expected 13:07, got %s", got)
	}
	if got := NormalizeClock("09:00"); got != "09:00" {
		t.Fatalf("expected 09:00, got %s", got)
	}
}
