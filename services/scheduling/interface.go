package scheduling

import (
	"context"
	"time"

	availabilityRepo "lawflow/database/repository/availability"
	bookingRepo "lawflow/database/repository/booking"
	"lawflow/models"
	"lawflow/services/notification"
)

// SchedulingEngine is the booking core: slot listing, admission control, and
// lifecycle transitions.
type SchedulingEngine interface {
	// ListSlots returns the ordered bookable candidates for a profile across
	// ["fromDate", "toDate"] (YYYY-MM-DD, resolved in the profile's timezone),
	// after capacity filtering. Read-only; never blocks on writes.
	ListSlots(ctx context.Context, profileID, fromDate, toDate string) ([]models.Slot, error)
	// Reserve admits a booking request for the submitted slot, or reports
	// why it cannot: *ValidationError, *ConflictError, or a store fault.
	Reserve(ctx context.Context, profileID string, sub *models.BookingSubmission) (*models.Booking, error)
	// TransitionBooking applies a lifecycle status change.
	TransitionBooking(ctx context.Context, bookingID string, req models.BookingTransitionRequest) (*models.Booking, error)
	// ListBookings returns a host's calendar view for a profile.
	ListBookings(ctx context.Context, profileID string, from, to time.Time, status string) ([]models.Booking, error)
	// DeleteBooking removes a booking record outright (explicit host action,
	// independent of the scheduling invariant) and returns the deleted record.
	DeleteBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultSchedulingEngine is the production scheduling engine.
type DefaultSchedulingEngine struct {
	Profiles availabilityRepo.AvailabilityRepository
	Bookings bookingRepo.BookingRepository
	Notifier notification.BookingNotifier

	// Now is the clock used for notice/advance checks; defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultSchedulingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
