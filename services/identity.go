package services

import (
	"strings"

	"github.com/google/uuid"

	"studioku-backend/models"
)

// PackageIdentity is what a booking collides on: the defined-service id when
// one is referenced, otherwise the lowercased category slug. Exactly one of
// the two is set.
type PackageIdentity struct {
	ServiceID *uuid.UUID
	Category  string
}

func NewPackageIdentity(slug string, serviceID *uuid.UUID) PackageIdentity {
	if serviceID != nil && *serviceID != uuid.Nil {
		return PackageIdentity{ServiceID: serviceID}
	}
	return PackageIdentity{Category: strings.ToLower(strings.TrimSpace(slug))}
}

// Matches applies the single collision rule: service-backed identities compare
// by id, generic identities by slug (case-insensitive). A service-backed
// identity never matches a slug-only booking, and vice versa.
func (p PackageIdentity) Matches(b *models.Booking) bool {
	if p.ServiceID != nil {
		return b.ServiceID != nil && *b.ServiceID == *p.ServiceID
	}
	return b.ServiceID == nil && strings.EqualFold(b.SelectedPackage, p.Category)
}
