package services

import (
	"reflect"
	"testing"

	"studioku-backend/models"
)

func TestResolve_EmptyDateReturnsFullGridAvailable(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	slots, err := svc.Resolve("2026-02-01", "couple", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(slots) != 23 {
		t.Fatalf("expected 23 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" || slots[len(slots)-1].Time != "20:00" {
		t.Fatalf("expected grid 09:00..20:00, got %s..%s", slots[0].Time, slots[len(slots)-1].Time)
	}
	for _, slot := range slots {
		if slot.Status != SlotAvailable {
			t.Fatalf("expected %s available, got %s", slot.Time, slot.Status)
		}
		if slot.Reason != nil {
			t.Fatalf("expected nil reason for %s, got %q", slot.Time, *slot.Reason)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	if err := db.Create(&models.AdminBlock{
		BlockDate: "2026-02-01", StartTime: "10:00", EndTime: "10:30",
	}).Error; err != nil {
		t.Fatalf("seed block: %v", err)
	}

	first, err := svc.Resolve("2026-02-01", "photobox", nil)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := svc.Resolve("2026-02-01", "photobox", nil)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for repeated resolves")
	}
}

func TestResolve_BlockMarksContainedSlots(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	if err := db.Create(&models.AdminBlock{
		BlockDate: "2026-02-01", StartTime: "10:00", EndTime: "10:30", Reason: "istirahat",
	}).Error; err != nil {
		t.Fatalf("seed block: %v", err)
	}

	slots, err := svc.Resolve("2026-02-01", "photobox", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	byTime := make(map[string]SlotStatus, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot
	}

	// Both ends of the block interval are inclusive.
	for _, blocked := range []string{"10:00", "10:15", "10:30"} {
		slot := byTime[blocked]
		if slot.Status != SlotBlocked {
			t.Fatalf("expected %s blocked, got %s", blocked, slot.Status)
		}
		if slot.Reason == nil || *slot.Reason != "istirahat" {
			t.Fatalf("expected reason istirahat for %s", blocked)
		}
	}
	if byTime["10:45"].Status != SlotAvailable {
		t.Fatalf("expected 10:45 available, got %s", byTime["10:45"].Status)
	}
	if byTime["09:45"].Status != SlotAvailable {
		t.Fatalf("expected 09:45 available, got %s", byTime["09:45"].Status)
	}
}

func TestResolve_ActiveBookingMarksSlotBooked(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	if err := db.Create(&models.Booking{
		CustomerName: "Sari", CustomerEmail: "sari@example.com", CustomerPhone: "081234567890",
		BookingDate: "2026-02-01", TimeSlot: "13:00", SelectedPackage: "couple",
		PaymentMethod: "cash", TotalPrice: 40000, Status: models.BookingPending,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	slots, err := svc.Resolve("2026-02-01", "couple", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, slot := range slots {
		want := SlotAvailable
		if slot.Time == "13:00" {
			want = SlotBooked
		}
		if slot.Status != want {
			t.Fatalf("expected %s %s, got %s", slot.Time, want, slot.Status)
		}
	}
}

func TestResolve_CancelledBookingFreesSlot(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	if err := db.Create(&models.Booking{
		CustomerName: "Sari", CustomerEmail: "sari@example.com", CustomerPhone: "081234567890",
		BookingDate: "2026-02-01", TimeSlot: "14:00", SelectedPackage: "couple",
		PaymentMethod: "cash", TotalPrice: 40000, Status: models.BookingCancelled,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	slots, err := svc.Resolve("2026-02-01", "couple", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, slot := range slots {
		if slot.Time == "14:00" && slot.Status != SlotAvailable {
			t.Fatalf("expected cancelled slot 14:00 available, got %s", slot.Status)
		}
	}
}

func TestResolve_BookedWinsOverBlocked(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	if err := db.Create(&models.AdminBlock{
		BlockDate: "2026-02-01", StartTime: "12:00", EndTime: "13:00", Reason: "istirahat",
	}).Error; err != nil {
		t.Fatalf("seed block: %v", err)
	}
	if err := db.Create(&models.Booking{
		CustomerName: "Sari", CustomerEmail: "sari@example.com", CustomerPhone: "081234567890",
		BookingDate: "2026-02-01", TimeSlot: "12:30", SelectedPackage: "couple",
		PaymentMethod: "cash", TotalPrice: 40000, Status: models.BookingConfirmed,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	slots, err := svc.Resolve("2026-02-01", "couple", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, slot := range slots {
		if slot.Time == "12:30" && slot.Status != SlotBooked {
			t.Fatalf("expected 12:30 booked despite the block, got %s", slot.Status)
		}
	}
}

func TestResolve_OutOfGridBookingSurfaces(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	// Legacy row whose time does not align with the 30-minute grid.
	if err := db.Create(&models.Booking{
		CustomerName: "Sari", CustomerEmail: "sari@example.com", CustomerPhone: "081234567890",
		BookingDate: "2026-02-01", TimeSlot: "13:10:00", SelectedPackage: "couple",
		PaymentMethod: "cash", TotalPrice: 40000, Status: models.BookingPending,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	slots, err := svc.Resolve("2026-02-01", "couple", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(slots) != 24 {
		t.Fatalf("expected 24 slots including the out-of-grid time, got %d", len(slots))
	}
	for i, slot := range slots {
		if i > 0 && slots[i-1].Time >= slot.Time {
			t.Fatalf("slots out of order: %s before %s", slots[i-1].Time, slot.Time)
		}
		if slot.Time == "13:10" && slot.Status != SlotBooked {
			t.Fatalf("expected 13:10 booked, got %s", slot.Status)
		}
	}
}

func TestResolve_OtherPackageBookingDoesNotOccupySlot(t *testing.T) {
	db := openTestDB(t)
	svc := NewAvailabilityService(db)

	if err := db.Create(&models.Booking{
		CustomerName: "Sari", CustomerEmail: "sari@example.com", CustomerPhone: "081234567890",
		BookingDate: "2026-02-01", TimeSlot: "13:00", SelectedPackage: "group",
		PaymentMethod: "cash", TotalPrice: 60000, Status: models.BookingPending,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	slots, err := svc.Resolve("2026-02-01", "couple", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, slot := range slots {
		if slot.Time == "13:00" && slot.Status != SlotAvailable {
			t.Fatalf("expected 13:00 available for couple, got %s", slot.Status)
		}
	}
}
