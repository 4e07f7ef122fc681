package services

import (
	"math"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioku-backend/models"
)

// priceTolerance absorbs decimal noise between client and server totals.
const priceTolerance = 0.01

// BookingDraft carries a customer submission before admission.
type BookingDraft struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	BookingDate      string
	TimeSlot         string
	SelectedPackage  string
	ServiceID        *uuid.UUID
	AdditionalPerson int
	BackgroundChoice string
	PaymentMethod    string
	TotalPrice       float64
	Notes            string
}

func (d *BookingDraft) requireFields() error {
	if d.CustomerName == "" || d.CustomerEmail == "" || d.CustomerPhone == "" ||
		d.BookingDate == "" || d.TimeSlot == "" || d.SelectedPackage == "" ||
		d.PaymentMethod == "" || d.TotalPrice <= 0 {
		return newValidationError("Please provide all required fields")
	}
	if d.PaymentMethod != models.PaymentCash && d.PaymentMethod != models.PaymentQris {
		return newValidationError("payment_method must be cash or qris")
	}
	return nil
}

// BookingService owns the booking ledger: admission of new bookings and the
// admin-side status transitions and deletes.
type BookingService struct {
	db       *gorm.DB
	notifier Notifier
	locks    sync.Map // booking date -> *sync.Mutex
}

func NewBookingService(db *gorm.DB, notifier Notifier) *BookingService {
	return &BookingService{db: db, notifier: notifier}
}

// dateLock serializes admissions per calendar date. Distinct dates never
// contend with each other.
func (s *BookingService) dateLock(date string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(date, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// List returns every booking, newest first, with its service preloaded.
func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Service").Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// ListByDate returns all bookings on one date, every status included.
func (s *BookingService) ListByDate(date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("booking_date = ?", date).Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) Get(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Service").First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Submit admits a draft: validate fields and price, re-check blocks and the
// slot, and commit as pending. The block check, collision check, and insert
// run under the date's lock, so concurrent submissions for the same key
// commit exactly once and the rest are rejected with ErrSlotTaken. Once the
// insert is acknowledged the booking exists; the admin notification
// afterwards is best effort.
func (s *BookingService) Submit(draft BookingDraft) (*models.Booking, error) {
	if err := draft.requireFields(); err != nil {
		return nil, err
	}
	draft.TimeSlot = NormalizeClock(draft.TimeSlot)

	var service *models.Service
	if draft.ServiceID != nil && *draft.ServiceID != uuid.Nil {
		var svc models.Service
		if err := s.db.First(&svc, "id = ?", *draft.ServiceID).Error; err != nil {
			return nil, err
		}
		service = &svc
		if err := validatePrice(service, &draft); err != nil {
			return nil, err
		}
	}

	identity := NewPackageIdentity(draft.SelectedPackage, draft.ServiceID)

	lock := s.dateLock(draft.BookingDate)
	lock.Lock()
	defer lock.Unlock()

	var blocks []models.AdminBlock
	if err := s.db.Where("block_date = ?", draft.BookingDate).Find(&blocks).Error; err != nil {
		return nil, err
	}
	if reason, ok := blockReason(blocks, draft.TimeSlot); ok {
		return nil, newValidationError("This time slot is blocked: %s", reason)
	}

	collision, err := s.findActiveCollision(draft.BookingDate, draft.TimeSlot, identity)
	if err != nil {
		return nil, err
	}
	if collision != nil {
		return nil, ErrSlotTaken
	}

	booking := models.Booking{
		CustomerName:     draft.CustomerName,
		CustomerEmail:    draft.CustomerEmail,
		CustomerPhone:    draft.CustomerPhone,
		BookingDate:      draft.BookingDate,
		TimeSlot:         draft.TimeSlot,
		SelectedPackage:  draft.SelectedPackage,
		ServiceID:        draft.ServiceID,
		AdditionalPerson: draft.AdditionalPerson,
		BackgroundChoice: draft.BackgroundChoice,
		PaymentMethod:    draft.PaymentMethod,
		TotalPrice:       draft.TotalPrice,
		Status:           models.BookingPending,
		Notes:            draft.Notes,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	booking.Service = service

	if s.notifier != nil {
		s.notifier.NotifyNewBooking(&booking)
	}
	return &booking, nil
}

// findActiveCollision returns the active booking holding the same date, time
// slot, and package identity, if any. Date and status are filtered in SQL;
// time and identity are compared on normalized values here so legacy rows
// with seconds still match.
func (s *BookingService) findActiveCollision(date, slot string, identity PackageIdentity) (*models.Booking, error) {
	var candidates []models.Booking
	if err := s.db.Where("booking_date = ? AND status <> ?", date, models.BookingCancelled).
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	for i := range candidates {
		if NormalizeClock(candidates[i].TimeSlot) == slot && identity.Matches(&candidates[i]) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// UpdateStatus moves a booking between pending, confirmed, and cancelled.
// Cancelling frees the slot for a new admission but keeps the row.
func (s *BookingService) UpdateStatus(id uuid.UUID, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, newValidationError("Invalid status. Must be: pending, confirmed, or cancelled")
	}

	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&booking).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete hard-deletes a booking.
func (s *BookingService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func validatePrice(service *models.Service, draft *BookingDraft) error {
	expected := service.Price
	if service.PricingType == models.PricingPerPerson {
		persons := draft.AdditionalPerson
		if persons < 1 {
			persons = 1
		}
		expected = service.Price * float64(persons)
	}
	if math.Abs(expected-draft.TotalPrice) > priceTolerance {
		return &PriceMismatchError{Expected: expected, Received: draft.TotalPrice}
	}
	return nil
}
