package services

import (
	"testing"

	"github.com/google/uuid"

	"studioku-backend/models"
)

func TestPackageIdentity_SlugComparison(t *testing.T) {
	identity := NewPackageIdentity("Couple", nil)

	if identity.ServiceID != nil {
		t.Fatalf("expected a slug identity")
	}
	if identity.Category != "couple" {
		t.Fatalf("expected lowercased slug, got %q", identity.Category)
	}

	if !identity.Matches(&models.Booking{SelectedPackage: "COUPLE"}) {
		t.Fatalf("slug comparison must be case-insensitive")
	}
	if identity.Matches(&models.Booking{SelectedPackage: "group"}) {
		t.Fatalf("different slugs must not match")
	}
}

func TestPackageIdentity_ServiceComparison(t *testing.T) {
	serviceID := uuid.New()
	otherID := uuid.New()
	identity := NewPackageIdentity("couple", &serviceID)

	if !identity.Matches(&models.Booking{ServiceID: &serviceID, SelectedPackage: "group"}) {
		t.Fatalf("service identities compare by id, not slug")
	}
	if identity.Matches(&models.Booking{ServiceID: &otherID}) {
		t.Fatalf("different service ids must not match")
	}
	// A service-backed request never collides with a slug-only booking.
	if identity.Matches(&models.Booking{SelectedPackage: "couple"}) {
		t.Fatalf("service identity matched a slug-only booking")
	}
}

func TestPackageIdentity_NilServiceIDFallsBackToSlug(t *testing.T) {
	nilID := uuid.Nil
	identity := NewPackageIdentity("photobox", &nilID)

	if identity.ServiceID != nil {
		t.Fatalf("uuid.Nil must not produce a service identity")
	}
	if !identity.Matches(&models.Booking{SelectedPackage: "photobox"}) {
		t.Fatalf("expected slug fallback to match")
	}
}
