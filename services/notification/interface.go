package notification

import (
	"context"

	"lawflow/models"
	"lawflow/utils"

	"go.uber.org/zap"
)

// BookingNotifier is the seam to the external notification delivery system.
// The scheduling core calls it fire-and-forget after successful admissions
// and transitions; delivery failures never affect booking outcomes.
type BookingNotifier interface {
	BookingCreated(ctx context.Context, profile *models.AvailabilityProfile, booking *models.Booking) error
	BookingStatusChanged(ctx context.Context, booking *models.Booking, previousStatus string) error
}

// LogNotifier records notification events in the application log. It stands
// in for the real delivery collaborator (email, browser push).
type LogNotifier struct{}

func (LogNotifier) BookingCreated(ctx context.Context, profile *models.AvailabilityProfile, booking *models.Booking) error {
	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("profileID", profile.ID),
		zap.String("status", booking.Status),
		zap.Time("startTime", booking.StartTime),
	)
	return nil
}

func (LogNotifier) BookingStatusChanged(ctx context.Context, booking *models.Booking, previousStatus string) error {
	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", booking.ID),
		zap.String("from", previousStatus),
		zap.String("to", booking.Status),
	)
	return nil
}
