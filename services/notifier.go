package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"studioku-backend/models"
)

// Notifier delivers booking messages to the studio admin. Delivery is fire
// and forget: failures are logged and never surface to the booking flow.
type Notifier interface {
	NotifyNewBooking(b *models.Booking)
	SendReminder(b *models.Booking)
}

// TwilioNotifier sends WhatsApp (or SMS fallback) messages to the studio
// admin phone and records every attempt in the notification log.
type TwilioNotifier struct {
	db      *gorm.DB
	client  *twilio.RestClient
	adminTo string
}

func NewTwilioNotifier(db *gorm.DB) *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		adminTo: os.Getenv("STUDIO_ADMIN_PHONE"),
	}
}

func (n *TwilioNotifier) NotifyNewBooking(b *models.Booking) {
	message := fmt.Sprintf(
		"New booking: %s (%s) booked %s on %s at %s. Total: Rp %.0f, payment: %s. Notes: %s",
		b.CustomerName, b.CustomerPhone, b.SelectedPackage,
		b.BookingDate, b.TimeSlot, b.TotalPrice, b.PaymentMethod, b.Notes)
	n.send(b, "new_booking", message)
}

func (n *TwilioNotifier) SendReminder(b *models.Booking) {
	message := fmt.Sprintf(
		"Reminder: %s (%s) has a %s session on %s at %s.",
		b.CustomerName, b.CustomerPhone, b.SelectedPackage, b.BookingDate, b.TimeSlot)
	n.send(b, "reminder", message)
}

func (n *TwilioNotifier) send(b *models.Booking, kind, message string) {
	// WhatsApp for E.164 numbers, plain SMS otherwise.
	channel := "sms"
	to := n.adminTo
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	status := "sent"
	errorMsg := ""
	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send %s message for booking %s: %v", kind, b.ID, err)
		status = "failed"
		errorMsg = err.Error()
	}

	entry := models.NotificationLog{
		BookingID:    b.ID,
		Kind:         kind,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}
	if err := n.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log %s notification for booking %s: %v", kind, b.ID, err)
	}
}
