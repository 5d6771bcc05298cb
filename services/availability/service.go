package availability

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	availabilityRepo "lawflow/database/repository/availability"
	"lawflow/models"
	"lawflow/services/scheduling"
	"lawflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func (s *DefaultProfileService) Create(ctx context.Context, ownerID string, p *models.AvailabilityProfile) (*models.AvailabilityProfile, error) {
	if verr := ValidateProfile(p); verr != nil {
		return nil, verr
	}

	now := s.now().UTC()
	p.ID = uuid.New().String()
	p.OwnerID = ownerID
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.PublicURL == "" {
		p.PublicURL = slugify(p.Title) + "-" + p.ID[:8]
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		if err == availabilityRepo.ErrSlugTaken {
			return nil, &scheduling.ValidationError{
				InvalidFields: []scheduling.FieldViolation{{Field: "publicUrl", Reason: "slug is already taken"}},
			}
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	utils.GetLogger().Info("availability profile created",
		zap.String("profileID", p.ID), zap.String("ownerID", ownerID))
	return p, nil
}

// Update replaces the configuration. Existing bookings are grandfathered:
// new rules apply only to future slot generation.
func (s *DefaultProfileService) Update(ctx context.Context, ownerID string, p *models.AvailabilityProfile) (*models.AvailabilityProfile, error) {
	current, err := s.Repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if current.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if verr := ValidateProfile(p); verr != nil {
		return nil, verr
	}

	p.OwnerID = current.OwnerID
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now().UTC()
	if p.PublicURL == "" {
		p.PublicURL = current.PublicURL
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		if err == availabilityRepo.ErrSlugTaken {
			return nil, &scheduling.ValidationError{
				InvalidFields: []scheduling.FieldViolation{{Field: "publicUrl", Reason: "slug is already taken"}},
			}
		}
		return nil, fmt.Errorf("failed to update profile %s: %w", p.ID, err)
	}
	return p, nil
}

func (s *DefaultProfileService) GetByID(ctx context.Context, id string) (*models.AvailabilityProfile, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultProfileService) GetBySlug(ctx context.Context, slug string) (*models.AvailabilityProfile, error) {
	return s.Repo.GetBySlug(ctx, slug)
}

func (s *DefaultProfileService) ListByOwner(ctx context.Context, ownerID string) ([]models.AvailabilityProfile, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Delete refuses while the profile still has pending bookings or confirmed
// bookings that have not started.
func (s *DefaultProfileService) Delete(ctx context.Context, ownerID, id string) error {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		return ErrNotOwner
	}

	blocking, err := s.Bookings.CountBlocking(ctx, id, s.now())
	if err != nil {
		return fmt.Errorf("failed to count blocking bookings for profile %s: %w", id, err)
	}
	if blocking > 0 {
		return &scheduling.PreconditionError{
			Message:          fmt.Sprintf("profile has %d active booking(s); cancel or complete them first", blocking),
			BlockingBookings: blocking,
		}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.GetLogger().Info("availability profile deleted",
		zap.String("profileID", id), zap.String("ownerID", ownerID))
	return nil
}

func slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "availability"
	}
	return slug
}
