package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestBlockCreate_DefaultsAndValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlockService(db)

	block, err := svc.Create("2026-02-01", "12:00", "13:00", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if block.Reason != "istirahat" {
		t.Fatalf("expected default reason istirahat, got %q", block.Reason)
	}
	if block.ID == uuid.Nil {
		t.Fatalf("expected an assigned block id")
	}

	var validationErr *ValidationError
	if _, err := svc.Create("2026-02-01", "13:00", "13:00", ""); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for start >= end, got %v", err)
	}
	if _, err := svc.Create("2026-02-01", "14:00", "13:00", ""); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for inverted interval, got %v", err)
	}
	if _, err := svc.Create("", "12:00", "13:00", ""); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for missing date, got %v", err)
	}
}

func TestBlockCreate_OverlapTolerated(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlockService(db)

	if _, err := svc.Create("2026-02-01", "10:00", "12:00", "maintenance"); err != nil {
		t.Fatalf("first block: %v", err)
	}
	if _, err := svc.Create("2026-02-01", "11:00", "13:00", "istirahat"); err != nil {
		t.Fatalf("expected overlapping block to be accepted, got %v", err)
	}
}

func TestBlockList_FiltersByDate(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlockService(db)

	if _, err := svc.Create("2026-02-01", "10:00", "11:00", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create("2026-02-02", "10:00", "11:00", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.List("")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(all))
	}

	filtered, err := svc.List("2026-02-01")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].BlockDate != "2026-02-01" {
		t.Fatalf("expected only the 2026-02-01 block, got %v", filtered)
	}
}

func TestBlockDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlockService(db)

	block, err := svc.Create("2026-02-01", "10:00", "11:00", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(block.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(block.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound on second delete, got %v", err)
	}
}
