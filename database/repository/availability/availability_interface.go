package availabilityRepo

import (
	"context"
	"errors"

	"lawflow/models"
)

var (
	// ErrNotFound means no profile matched the given ID or slug.
	ErrNotFound = errors.New("availability profile not found")
	// ErrSlugTaken means another profile already owns the public URL slug.
	ErrSlugTaken = errors.New("public url slug already taken")
)

// AvailabilityRepository defines data access for availability profiles.
type AvailabilityRepository interface {
	// Create persists a new profile. A colliding public_url yields ErrSlugTaken.
	Create(ctx context.Context, p *models.AvailabilityProfile) error
	// Update replaces an existing profile.
	Update(ctx context.Context, p *models.AvailabilityProfile) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(ctx context.Context, id string) (*models.AvailabilityProfile, error)
	// GetBySlug retrieves a profile by its public URL slug.
	GetBySlug(ctx context.Context, slug string) (*models.AvailabilityProfile, error)
	// ListByOwner returns every profile owned by a host.
	ListByOwner(ctx context.Context, ownerID string) ([]models.AvailabilityProfile, error)
	// Delete removes a profile. Deletion preconditions are enforced by the
	// service layer before this is called.
	Delete(ctx context.Context, id string) error
}
