package scheduling

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	availabilityRepo "lawflow/database/repository/availability"
	bookingRepo "lawflow/database/repository/booking"
	"lawflow/models"
	"lawflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// maxReserveAttempts bounds retries for transient store faults. Genuine
	// slot conflicts are never retried.
	maxReserveAttempts = 3
	retryBaseBackoff   = 50 * time.Millisecond
)

// ListSlots generates and capacity-filters candidates for the date range from
// a single batch read of the profile's active bookings.
func (e *DefaultSchedulingEngine) ListSlots(ctx context.Context, profileID, fromDate, toDate string) ([]models.Slot, error) {
	profile, err := e.Profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, availabilityRepo.ErrNotFound
	}

	loc := profile.Location()
	from, err := time.ParseInLocation("2006-01-02", fromDate, loc)
	if err != nil {
		return nil, &ValidationError{InvalidFields: []FieldViolation{{Field: "from", Reason: "must be YYYY-MM-DD"}}}
	}
	to, err := time.ParseInLocation("2006-01-02", toDate, loc)
	if err != nil {
		return nil, &ValidationError{InvalidFields: []FieldViolation{{Field: "to", Reason: "must be YYYY-MM-DD"}}}
	}
	if to.Before(from) {
		return nil, &ValidationError{InvalidFields: []FieldViolation{{Field: "to", Reason: "must not be before from"}}}
	}

	existing, err := e.activeBookingsAround(ctx, profile, from, to)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := GenerateSlots(profile, existing, from, to, now)
	return FilterByCapacity(candidates, existing, profile), nil
}

// Reserve is the transactional admission-control step. It re-validates the
// submission, re-derives slot candidacy against "now at commit time", and
// re-checks the no-overlap invariant and capacity caps inside one store
// transaction before inserting the booking.
func (e *DefaultSchedulingEngine) Reserve(ctx context.Context, profileID string, sub *models.BookingSubmission) (*models.Booking, error) {
	profile, err := e.Profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, &ConflictError{Reason: "profile is not accepting bookings"}
	}

	if verr := ValidateSubmission(profile, sub); verr != nil {
		return nil, verr
	}

	booking := newBooking(profile, sub, e.now())

	for attempt := 1; ; attempt++ {
		err = e.tryReserve(ctx, profile, booking)
		if err == nil {
			break
		}
		var transient *StoreUnavailableError
		if errors.As(err, &transient) && attempt < maxReserveAttempts {
			utils.GetLogger().Warn("reservation hit transient store fault, retrying",
				zap.Int("attempt", attempt), zap.Error(err))
			sleepWithJitter(attempt)
			continue
		}
		return nil, err
	}

	if e.Notifier != nil {
		if nerr := e.Notifier.BookingCreated(ctx, profile, booking); nerr != nil {
			utils.GetLogger().Warn("booking notification failed", zap.Error(nerr))
		}
	}
	return booking, nil
}

func newBooking(profile *models.AvailabilityProfile, sub *models.BookingSubmission, now time.Time) *models.Booking {
	status := models.BookingConfirmed
	if profile.RequireApproval {
		status = models.BookingPending
	}
	start := sub.StartTime.UTC()
	return &models.Booking{
		ID:                uuid.New().String(),
		AvailabilityID:    profile.ID,
		ClientName:        sub.ClientName,
		ClientEmail:       sub.ClientEmail,
		ClientPhone:       sub.ClientPhone,
		ClientCompany:     sub.ClientCompany,
		ClientAddress:     sub.ClientAddress,
		Notes:             sub.Notes,
		CustomFieldValues: sub.CustomFieldValues,
		StartTime:         start,
		EndTime:           start.Add(time.Duration(profile.Duration) * time.Minute),
		Status:            status,
		CreatedAt:         now.UTC(),
		UpdatedAt:         now.UTC(),
	}
}

func (e *DefaultSchedulingEngine) tryReserve(ctx context.Context, profile *models.AvailabilityProfile, booking *models.Booking) error {
	now := e.now()

	err := e.Bookings.Reserve(ctx, booking, func(txCtx context.Context) error {
		existing, err := e.activeBookingsAround(txCtx, profile, booking.StartTime, booking.EndTime)
		if err != nil {
			return &StoreUnavailableError{Op: "reserve precheck", Err: err}
		}

		// Candidacy is re-derived from scratch: the requested start must
		// still fall out of the generator for its own day, which covers
		// exclusions, the advance and notice windows, grid alignment, and
		// buffer-expanded overlap with the current active set.
		day := midnight(booking.StartTime.In(profile.Location()), profile.Location())
		if !containsStart(GenerateSlots(profile, existing, day, day, now), booking.StartTime) {
			return &ConflictError{Reason: "slot is no longer available"}
		}
		if capacityReached(booking.StartTime, existing, profile) {
			return &ConflictError{Reason: "booking limit reached for this period"}
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, bookingRepo.ErrDuplicateSlot):
		return &ConflictError{Reason: "slot was just taken"}
	default:
		var cerr *ConflictError
		var serr *StoreUnavailableError
		if errors.As(err, &cerr) || errors.As(err, &serr) {
			return err
		}
		return &StoreUnavailableError{Op: "reserve", Err: err}
	}
}

// activeBookingsAround fetches the active set wide enough for both the
// buffer-expanded overlap check and the daily/weekly capacity counts: the
// full ISO weeks touched by [from, to], padded by a day on each side.
func (e *DefaultSchedulingEngine) activeBookingsAround(ctx context.Context, profile *models.AvailabilityProfile, from, to time.Time) ([]models.Booking, error) {
	loc := profile.Location()
	start := startOfISOWeek(from.In(loc)).AddDate(0, 0, -1)
	end := startOfISOWeek(to.In(loc)).AddDate(0, 0, 8)
	return e.Bookings.ListActiveInRange(ctx, profile.ID, start, end)
}

func startOfISOWeek(t time.Time) time.Time {
	day := midnight(t, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

func containsStart(slots []models.Slot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

func sleepWithJitter(attempt int) {
	backoff := retryBaseBackoff * time.Duration(1<<attempt)
	jitter := time.Duration(rand.Int63n(int64(retryBaseBackoff)))
	time.Sleep(backoff + jitter)
}

// TransitionBooking applies a lifecycle change and persists it. The write is
// conditioned on the status the transition started from, so a concurrent
// rival transition surfaces as a ConflictError instead of silently winning.
func (e *DefaultSchedulingEngine) TransitionBooking(ctx context.Context, bookingID string, req models.BookingTransitionRequest) (*models.Booking, error) {
	booking, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	if err := Transition(booking, req, e.now()); err != nil {
		return nil, err
	}
	if err := e.Bookings.UpdateStatus(ctx, booking, previous); err != nil {
		if errors.Is(err, bookingRepo.ErrStaleStatus) {
			return nil, &ConflictError{Reason: "booking was modified concurrently"}
		}
		return nil, fmt.Errorf("failed to persist transition for booking %s: %w", bookingID, err)
	}

	if e.Notifier != nil {
		if nerr := e.Notifier.BookingStatusChanged(ctx, booking, previous); nerr != nil {
			utils.GetLogger().Warn("transition notification failed", zap.Error(nerr))
		}
	}
	return booking, nil
}

// ListBookings returns the host calendar view for a profile.
func (e *DefaultSchedulingEngine) ListBookings(ctx context.Context, profileID string, from, to time.Time, status string) ([]models.Booking, error) {
	if _, err := e.Profiles.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	return e.Bookings.ListByProfile(ctx, profileID, from, to, status)
}

// DeleteBooking removes a booking record outright and returns it so callers
// can invalidate read models derived from its profile.
func (e *DefaultSchedulingEngine) DeleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := e.Bookings.Delete(ctx, bookingID); err != nil {
		return nil, err
	}
	return booking, nil
}
