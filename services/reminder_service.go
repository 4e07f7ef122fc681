package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"studioku-backend/models"
	"studioku-backend/utils"
)

// ReminderService sends the studio admin a morning run-through of tomorrow's
// confirmed sessions. It lives entirely outside the booking flow.
type ReminderService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewReminderService(db *gorm.DB, notifier Notifier) *ReminderService {
	return &ReminderService{db: db, notifier: notifier}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	if err := s.db.Where("booking_date = ? AND status = ?", tomorrow, models.BookingConfirmed).
		Order("time_slot ASC").Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch bookings for %s: %v", tomorrow, err)
		return
	}

	for i := range bookings {
		s.notifier.SendReminder(&bookings[i])
	}
	log.Printf("Sent %d reminders for %s", len(bookings), tomorrow)
}
