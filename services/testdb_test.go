package services

import (
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studioku-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pooled connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Booking{},
		&models.AdminBlock{},
		&models.NotificationLog{},
	); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db
}

// countingNotifier stands in for Twilio in tests.
type countingNotifier struct {
	newBookings int64
	reminders   int64
}

func (n *countingNotifier) NotifyNewBooking(b *models.Booking) {
	atomic.AddInt64(&n.newBookings, 1)
}

func (n *countingNotifier) SendReminder(b *models.Booking) {
	atomic.AddInt64(&n.reminders, 1)
}
