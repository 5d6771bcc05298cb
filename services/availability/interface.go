package availability

import (
	"context"
	"errors"
	"time"

	availabilityRepo "lawflow/database/repository/availability"
	bookingRepo "lawflow/database/repository/booking"
	"lawflow/models"
)

// ErrNotOwner means the caller does not own the profile it tried to mutate.
var ErrNotOwner = errors.New("availability profile is owned by another host")

// ProfileService manages a host's availability profiles.
type ProfileService interface {
	Create(ctx context.Context, ownerID string, p *models.AvailabilityProfile) (*models.AvailabilityProfile, error)
	// Update replaces the profile configuration. Existing bookings are
	// grandfathered: they are never re-validated against the new rules.
	Update(ctx context.Context, ownerID string, p *models.AvailabilityProfile) (*models.AvailabilityProfile, error)
	GetByID(ctx context.Context, id string) (*models.AvailabilityProfile, error)
	GetBySlug(ctx context.Context, slug string) (*models.AvailabilityProfile, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.AvailabilityProfile, error)
	// Delete removes a profile, refusing with a PreconditionError while any
	// pending booking or future confirmed booking references it.
	Delete(ctx context.Context, ownerID, id string) error
}

// DefaultProfileService is the production profile service.
type DefaultProfileService struct {
	Repo     availabilityRepo.AvailabilityRepository
	Bookings bookingRepo.BookingRepository

	Now func() time.Time
}

func (s *DefaultProfileService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
